package reminder

type Type struct {
	v string
}

func (t Type) String() string {
	return t.v
}

var (
	TypeUnknown      = Type{}
	TypeNotification = Type{v: "Notification"}
	TypeAlarm        = Type{v: "Alarm"}
	TypeVoice        = Type{v: "Voice"}
)

// DefaultType is preselected on a fresh reminder form.
var DefaultType = TypeVoice

func ParseType(value string) (Type, error) {
	switch value {
	case "Notification":
		return TypeNotification, nil
	case "Alarm":
		return TypeAlarm, nil
	case "Voice":
		return TypeVoice, nil
	default:
		return TypeUnknown, ErrParseType
	}
}
