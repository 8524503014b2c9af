// Package ebitengl implements core.Graphics on ebiten (build tag ebiten).
package ebitengl
