package internal

// Ownership says who owns the input value. It is fixed at construction.
type Ownership int

const (
	// InternallyOwned: the input keeps and mutates its own value.
	InternallyOwned Ownership = iota
	// ExternallyOwned: the caller owns the value and pushes it with SetValue;
	// the input never changes it on its own.
	ExternallyOwned
)

func (o Ownership) String() string {
	if o == ExternallyOwned {
		return "external"
	}
	return "internal"
}

// State is the focus lifecycle of the input.
type State int

const (
	StatePristine State = iota
	StateFocused
	StateBlurred
)

func (s State) String() string {
	switch s {
	case StateFocused:
		return "focused"
	case StateBlurred:
		return "blurred"
	default:
		return "pristine"
	}
}

// ValidationMode decides when validation runs on its own.
type ValidationMode string

const (
	ValidateOnChange ValidationMode = "onChange"
	ValidateOnBlur   ValidationMode = "onBlur"
	ValidateManual   ValidationMode = "manual"
)

// PlaceholderVariant selects the placeholder text when none is given explicitly.
type PlaceholderVariant string

const (
	PlaceholderLocalized PlaceholderVariant = "localized"
	PlaceholderDialCode  PlaceholderVariant = "country-dial-code"
	PlaceholderNone      PlaceholderVariant = "none"
)
