package logger

// PrefixedLogger tags every message with "[prefix]" and appends fixed
// attributes after the call's own ones.
type PrefixedLogger struct {
	inner  Logger
	prefix string
	attrs  []any
}

func NewPrefixedLogger(inner Logger, prefix string, attrs ...any) *PrefixedLogger {
	return &PrefixedLogger{
		inner:  inner,
		prefix: "[" + prefix + "] ",
		attrs:  attrs,
	}
}

func (p *PrefixedLogger) args(args []any) []any {
	if len(p.attrs) == 0 {
		return args
	}
	return append(append(make([]any, 0, len(args)+len(p.attrs)), args...), p.attrs...)
}

func (p *PrefixedLogger) SetLogLevel(levelStr string) {
	p.inner.SetLogLevel(levelStr)
}

func (p *PrefixedLogger) GetLogLevel() string {
	return p.inner.GetLogLevel()
}

func (p *PrefixedLogger) Trace(msg string, args ...any) {
	p.inner.Trace(p.prefix+msg, p.args(args)...)
}

func (p *PrefixedLogger) Debug(msg string, args ...any) {
	p.inner.Debug(p.prefix+msg, p.args(args)...)
}

func (p *PrefixedLogger) Info(msg string, args ...any) {
	p.inner.Info(p.prefix+msg, p.args(args)...)
}

func (p *PrefixedLogger) Warn(msg string, args ...any) {
	p.inner.Warn(p.prefix+msg, p.args(args)...)
}

func (p *PrefixedLogger) Error(msg string, err error, args ...any) {
	p.inner.Error(p.prefix+msg, err, p.args(args)...)
}

func (p *PrefixedLogger) Fatal(msg string, err error, args ...any) {
	p.inner.Fatal(p.prefix+msg, err, p.args(args)...)
}
