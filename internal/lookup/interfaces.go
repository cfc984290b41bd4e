package lookup

import "context"

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Fetcher,Copier,Logger

type Fetcher interface {
	IP(ctx context.Context) (publicIP string, err error)
	URL() string
}

type Copier interface {
	Copy(text string)
}

type Logger interface {
	Info(s string)
	Error(s string)
}
