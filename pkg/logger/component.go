package logger

import (
	"fmt"
	"strings"
)

// ComponentLogger tags every line with a component name and key-value fields
type ComponentLogger struct {
	component string
	fields    []interface{}
	target    *Logger
}

// WithComponent returns a logger bound to the default logger.
// Calls are dropped while no default logger is configured.
func WithComponent(component string) *ComponentLogger {
	return &ComponentLogger{component: component}
}

// Component returns a component logger writing to l
func (l *Logger) Component(component string) *ComponentLogger {
	return &ComponentLogger{component: component, target: l}
}

// With returns a copy carrying additional key-value fields
func (c *ComponentLogger) With(keyvals ...interface{}) *ComponentLogger {
	fields := make([]interface{}, 0, len(c.fields)+len(keyvals))
	fields = append(fields, c.fields...)
	fields = append(fields, keyvals...)
	return &ComponentLogger{component: c.component, fields: fields, target: c.target}
}

func (c *ComponentLogger) Debug(msg string, keyvals ...interface{}) {
	c.emit(LevelDebug, msg, keyvals)
}

func (c *ComponentLogger) Info(msg string, keyvals ...interface{}) {
	c.emit(LevelInfo, msg, keyvals)
}

func (c *ComponentLogger) Warn(msg string, keyvals ...interface{}) {
	c.emit(LevelWarn, msg, keyvals)
}

func (c *ComponentLogger) Error(msg string, keyvals ...interface{}) {
	c.emit(LevelError, msg, keyvals)
}

func (c *ComponentLogger) emit(level LogLevel, msg string, keyvals []interface{}) {
	target := c.target
	if target == nil {
		target = defaultLogger
	}
	if target == nil {
		return
	}
	target.log(level, c.format(msg, keyvals))
}

func (c *ComponentLogger) format(msg string, keyvals []interface{}) string {
	var b strings.Builder
	b.WriteString(c.component)
	b.WriteString(": ")
	b.WriteString(msg)

	all := append(append([]interface{}{}, c.fields...), keyvals...)
	for i := 0; i < len(all); i += 2 {
		key := fmt.Sprint(all[i])
		if i+1 >= len(all) {
			fmt.Fprintf(&b, " %s=<missing>", key)
			break
		}
		fmt.Fprintf(&b, " %s=%v", key, all[i+1])
	}
	return b.String()
}
