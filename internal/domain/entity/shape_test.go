package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		a      Vec2
		sa     Shape
		b      Vec2
		sb     Shape
		expect bool
	}{
		{"box box overlap", Vec2{0, 0}, Box(10, 10), Vec2{8, 0}, Box(10, 10), true},
		{"box box touching", Vec2{0, 0}, Box(10, 10), Vec2{10, 0}, Box(10, 10), false},
		{"box box apart vertically", Vec2{0, 0}, Box(10, 10), Vec2{0, 30}, Box(10, 10), false},
		{"circle circle overlap", Vec2{0, 0}, Circle(5), Vec2{6, 0}, Circle(5), true},
		{"circle circle apart", Vec2{0, 0}, Circle(5), Vec2{11, 0}, Circle(5), false},
		{"box circle side", Vec2{0, 0}, Box(20, 20), Vec2{14, 0}, Circle(5), true},
		{"box circle corner miss", Vec2{0, 0}, Box(20, 20), Vec2{14, 14}, Circle(5), false},
		{"circle box order swapped", Vec2{14, 0}, Circle(5), Vec2{0, 0}, Box(20, 20), true},
		{"circle inside box", Vec2{0, 0}, Box(40, 40), Vec2{1, 1}, Circle(2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Overlaps(tt.a, tt.sa, tt.b, tt.sb))
		})
	}
}
