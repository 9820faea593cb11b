package games

import (
	"crypto/rand"
	"encoding/binary"
)

// Source - источник равномерных значений в [0, 1).
// В тестах подменяется на детерминированную последовательность.
type Source interface {
	Float64() float64
}

type cryptoSource struct{}

// NewSource возвращает источник на crypto/rand
func NewSource() Source {
	return cryptoSource{}
}

// Float64 отображает 32 случайных бита в [0, 1)
func (cryptoSource) Float64() float64 {
	var b [4]byte
	// crypto/rand.Read по контракту не возвращает ошибку
	_, _ = rand.Read(b[:])
	return float64(binary.BigEndian.Uint32(b[:])) / (1 << 32)
}
