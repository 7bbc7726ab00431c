//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of fractal-gallery requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/gallery` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "The websocket feed runs headless: `go run ./cmd/feed`.")
	os.Exit(2)
}
