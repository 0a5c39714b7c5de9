// perft.go implements the perft CLI driver, an external collaborator
// of the core library: it consumes only FromFEN, Game.ParseMove,
// Game.MakeMove, Game.UnmakeMove and Game.LegalMoves.
//
// Usage: perft <depth> [<fen> [<moves>]]
//
// fen defaults to the standard starting position; moves, if given, is
// a space-separated string of UCI moves applied before the count
// starts. Output is one line per root move, "<uci> <leaf_count>",
// followed by a blank line and the total leaf count.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/draketh/chesscore"
)

func perft(g *chesscore.Game, depth int) int {
	if depth == 0 {
		return 1
	}
	legal := g.LegalMoves()
	if depth == 1 {
		return len(legal)
	}
	nodes := 0
	for _, m := range legal {
		g.MakeMove(m)
		nodes += perft(g, depth-1)
		g.UnmakeMove()
	}
	return nodes
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalln("usage: perft <depth> [<fen> [<moves>]]")
	}

	depth, err := strconv.Atoi(os.Args[1])
	if err != nil {
		log.Fatalln("invalid depth:", err)
	}

	fen := chesscore.InitialFEN
	if len(os.Args) > 2 {
		fen = os.Args[2]
	}

	g, err := chesscore.FromFEN(fen)
	if err != nil {
		log.Fatalln(err)
	}

	if len(os.Args) > 3 {
		for _, uci := range strings.Fields(os.Args[3]) {
			m, err := g.ParseMove(uci)
			if err != nil {
				log.Fatalln(err)
			}
			g.MakeMove(m)
		}
	}

	if depth == 0 {
		fmt.Println()
		fmt.Println(1)
		return
	}

	total := 0
	for _, m := range g.LegalMoves() {
		g.MakeMove(m)
		n := perft(g, depth-1)
		g.UnmakeMove()
		fmt.Printf("%s %d\n", m.UCI(), n)
		total += n
	}
	fmt.Println()
	fmt.Println(total)
}
