package cache

import "context"

// Noop é usado quando o Redis não está configurado: nada é guardado
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (Noop) Set(context.Context, string, interface{}) error { return nil }

func (Noop) Flush(context.Context) (int, error) { return 0, nil }
