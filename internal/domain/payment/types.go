package payment

type Method string

const (
	MethodCash   Method = "cash"
	MethodOnline Method = "online"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodOnline:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusRefunded  Status = "refunded"
	StatusFailed    Status = "failed"
)

// StatusNone stands for "no payment row" wherever a Status is derived.
const StatusNone Status = ""

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusRefunded, StatusFailed:
		return true
	default:
		return false
	}
}
