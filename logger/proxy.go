package logger

import "context"

// Proxy forwards every call to the manager's current logger.
type Proxy struct {
	manager *Manager
}

func (p *Proxy) Enabled(level Level) bool {
	return p.manager.Current().Enabled(level)
}

func (p *Proxy) Log(level Level, msg string) {
	p.manager.Current().Log(level, msg)
}

func (p *Proxy) LogException(level Level, action func() error, msg string) bool {
	return p.manager.Current().LogException(level, action, msg)
}

func (p *Proxy) LogExceptionAsync(ctx context.Context, level Level, action func(context.Context) error, msg string) <-chan bool {
	return p.manager.Current().LogExceptionAsync(ctx, level, action, msg)
}

// Close shuts down the manager's current logger.
func (p *Proxy) Close() error {
	return p.manager.Shutdown()
}
