package util

import (
	"time"

	"github.com/google/uuid"
)

// Clock : источник времени, в тестах подменяется
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// IDGenerator : генератор идентификаторов документов и записей
type IDGenerator interface {
	New() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }
