package logging

// MockLogger captures log entries for verification in tests. Loggers
// derived via WithField/WithFields/WithError record into the original
// MockLogger's Entries slice.
type MockLogger struct {
	Entries       []LogEntry
	root          *MockLogger
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	sink := m
	if m.root != nil {
		sink = m.root
	}
	sink.Entries = append(sink.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]Field(nil), m.pendingFields...), fields...),
		Error:   m.pendingError,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatal records the entry without exiting, unlike a real logger.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

func (m *MockLogger) WithError(err error) Logger {
	child := m.derive()
	child.pendingError = err
	return child
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

func (m *MockLogger) WithFields(fields ...Field) Logger {
	child := m.derive()
	child.pendingFields = append(child.pendingFields, fields...)
	return child
}

func (m *MockLogger) derive() *MockLogger {
	root := m.root
	if root == nil {
		root = m
	}
	return &MockLogger{
		root:          root,
		pendingError:  m.pendingError,
		pendingFields: append([]Field(nil), m.pendingFields...),
	}
}

// HasEntry checks if an entry with the given level and message was captured.
func (m *MockLogger) HasEntry(level, message string) bool {
	sink := m
	if m.root != nil {
		sink = m.root
	}
	for _, entry := range sink.Entries {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}
