// Package dice шестигранный кубик с подменяемым источником случайности
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log"
	"math/rand"
	"time"
)

// Sides Граней у кубика
const Sides = 6

// Source Источник случайности для кубика. Подходит *rand.Rand, в тестах - заданная последовательность
type Source interface {
	Intn(n int) int
}

// readSeed Подменяется в тестах
var readSeed = NewSeed

// NewSeed Случайный seed из crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewSource math/rand с seed из crypto/rand.
// Если системный источник недоступен, seed берется из часов, чтобы партии не повторяли друг друга
func NewSource() Source {
	seed, err := readSeed()
	if err != nil {
		seed = time.Now().UnixNano()
		log.Printf("dice seed error, falling back to clock seed: %v", err)
	}
	return rand.New(rand.NewSource(seed))
}

// NewSeededSource Детерминированный источник для повтора партии
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Die Один кубик. Хранит последнее выпавшее значение для отображения.
// Не синхронизирован
type Die struct {
	src   Source
	value int
}

// New Кубик, показывающий 1
func New(src Source) *Die {
	return &Die{
		src:   src,
		value: 1,
	}
}

// Roll Равновероятная грань 1..6
func (d *Die) Roll() int {
	d.value = d.src.Intn(Sides) + 1
	return d.value
}

// Value Последняя выпавшая грань
func (d *Die) Value() int {
	return d.value
}

// Reset Возврат к начальной грани
func (d *Die) Reset() {
	d.value = 1
}
