// Package refcode генерирует реферальные коды.
package refcode

import "github.com/dchest/uniuri"

const Length = 8

// алфавит без визуально похожих символов (0/O, 1/I/l), код приходится вводить руками.
var chars = []byte("ABCDEFGHJKLMNPQRSTUVWXYZ23456789")

func Generate() string {
	return uniuri.NewLenChars(Length, chars)
}
