package gnss

import (
	"errors"
	"fmt"
	"io"

	serial "github.com/jacobsa/go-serial/serial"
)

// OpenSerial opens a receiver serial port with 8N1 framing.
func OpenSerial(portName string, baud uint) (io.ReadWriteCloser, error) {
	if portName == "" {
		return nil, errors.New("open serial: port name is empty")
	}
	if baud == 0 {
		return nil, errors.New("open serial: baud rate must be positive")
	}

	port, err := serial.Open(serial.OpenOptions{
		PortName:              portName,
		BaudRate:              baud,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial %s at %d baud: %w", portName, baud, err)
	}
	return port, nil
}
