package geodesy

import (
	"fmt"

	"geoconv-service/internal/config"
	"geoconv-service/internal/ports"
)

// Factory is a TransformerFactory that may hold native resources.
type Factory interface {
	ports.TransformerFactory
	Close()
}

func (BuiltinEngine) Close() {}

// New returns the engine selected by name (see config.EngineBuiltin, config.EngineProj).
func New(name string) (Factory, error) {
	switch name {
	case "", config.EngineBuiltin:
		return NewBuiltinEngine(), nil
	case config.EngineProj:
		e, err := newProjEngine()
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("geodesy: unknown engine %q", name)
	}
}
