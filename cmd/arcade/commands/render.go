package commands

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/pocketarcade/arcade/game"
	"github.com/pocketarcade/arcade/rules"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorYellow

	// every grid cell is two columns wide so the board looks square
	cellWidth = 2
	boardLeft = 1
	boardTop  = 2
)

// terminalBoard returns the board size for the flags, filling the terminal
// when a dimension is 0.
func terminalBoard(width, height int) (int, int) {
	w, h := termbox.Size()
	if width <= 0 {
		width = (w - 2) / cellWidth
	}
	if height <= 0 {
		height = h - boardTop - 2
	}
	return width, height
}

func render(s rules.Snapshot, width, height int) error {
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	renderTitle(s)
	renderBoard(width, height)
	renderFood(s.Food, width, height)
	renderSnake(s.Snake, width, height)
	if s.State == rules.GameStateOver {
		renderGameOver(s, width, height)
	}

	return termbox.Flush()
}

func onBoard(p game.Point, width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func cellOrigin(p game.Point) (int, int) {
	return boardLeft + p.X*cellWidth, boardTop + p.Y
}

func renderSnake(body []game.Point, width, height int) {
	for i, b := range body {
		if !onBoard(b, width, height) {
			continue
		}
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		x, y := cellOrigin(b)
		fill(x, y, cellWidth, 1, termbox.Cell{Ch: ' ', Fg: color, Bg: color})
	}
}

var foodEmoji = []rune{
	'🍒',
	'🍍',
	'🍑',
	'🍇',
	'🍏',
	'🍌',
	'🍩',
	'🍪',
}

// foodRune picks an emoji from the food position so it stays put between
// redraws.
func foodRune(p game.Point) rune {
	i := (p.X*31 + p.Y) % len(foodEmoji)
	if i < 0 {
		i = -i
	}
	return foodEmoji[i]
}

func renderFood(food game.Point, width, height int) {
	if !onBoard(food, width, height) {
		return
	}
	x, y := cellOrigin(food)
	ch := foodRune(food)
	if runewidth.RuneWidth(ch) < cellWidth {
		ch = '●'
		termbox.SetCell(x+1, y, ' ', defaultColor, bgColor)
	}
	termbox.SetCell(x, y, ch, termbox.ColorRed, bgColor)
}

func renderBoard(width, height int) {
	var (
		left   = boardLeft - 1
		right  = boardLeft + width*cellWidth
		top    = boardTop - 1
		bottom = boardTop + height
	)
	for i := boardTop; i < bottom; i++ {
		termbox.SetCell(left, i, '│', defaultColor, bgColor)
		termbox.SetCell(right, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, top, '┐', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)

	fill(boardLeft, top, width*cellWidth, 1, termbox.Cell{Ch: '─'})
	fill(boardLeft, bottom, width*cellWidth, 1, termbox.Cell{Ch: '─'})

	tbprint(boardLeft, bottom+1, defaultColor, defaultColor, "arrows/wasd or drag to steer, r restart, q quit")
}

func renderTitle(s rules.Snapshot) {
	tbprint(boardLeft, 0, defaultColor, defaultColor,
		fmt.Sprintf("Snake Game  score %d  turn %d", s.Score(), s.Turn))
}

func renderGameOver(s rules.Snapshot, width, height int) {
	lines := []string{
		"Game Over",
		fmt.Sprintf("score %d", s.Score()),
		"Press R to play again",
	}
	midY := boardTop + height/2 - len(lines)/2
	for i, line := range lines {
		x := boardLeft + (width*cellWidth-runewidth.StringWidth(line))/2
		if x < boardLeft {
			x = boardLeft
		}
		tbprint(x, midY+i, termbox.ColorWhite|termbox.AttrBold, termbox.ColorBlue, line)
	}
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
