package clipboard

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Backend,Logger

// Backend writes text to a clipboard facility.
type Backend interface {
	Write(text string) error
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
