// Package yen renders whole-yen amounts for the terminal. Losses use the
// Japanese accounting triangle (▲) instead of a minus sign.
package yen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

const (
	oku = 100_000_000
	man = 10_000
)

// Format renders an amount with the standard JPY formatter, e.g. "¥1,234" or
// "▲¥1,234" for a loss.
func Format(amount int64) string {
	if amount < 0 {
		return "▲" + money.New(-amount, money.JPY).Display()
	}
	return money.New(amount, money.JPY).Display()
}

// Readable renders an amount in 億/万 units, the way a Japanese reader scans
// large figures: 6_440_000_000 -> "64億4,000万円".
func Readable(amount int64) string {
	if amount == 0 {
		return "±0円"
	}

	prefix := ""
	abs := amount
	if amount < 0 {
		prefix = "▲"
		abs = -amount
	}

	switch {
	case abs >= oku:
		o := abs / oku
		m := (abs % oku) / man
		if m > 0 {
			return fmt.Sprintf("%s%s億%s万円", prefix, group(o), group(m))
		}
		return fmt.Sprintf("%s%s億円", prefix, group(o))
	case abs >= man:
		return fmt.Sprintf("%s%s万円", prefix, group(abs/man))
	default:
		return fmt.Sprintf("%s%s円", prefix, group(abs))
	}
}

// group inserts thousands separators into a non-negative integer.
func group(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
