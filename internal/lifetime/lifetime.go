package lifetime

type Lifetime int

const (
	Singleton Lifetime = iota
	Transient
	Lazy
)

func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Transient:
		return "transient"
	case Lazy:
		return "lazy"
	default:
		return "unknown"
	}
}
