// Pawgress renders live activity from builds, downloads and file
// operations as one status line at the bottom of the terminal.
package main

import (
	"os"

	"github.com/schmitthub/pawgress/internal/pawgress"
)

func main() {
	os.Exit(pawgress.Main())
}
