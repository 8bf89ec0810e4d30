package main

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/lockbox-server/internal/lockbox"
	"github.com/vancomm/lockbox-server/internal/logging"
)

var log = logging.New()

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func parseDimension(arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", arg)
	}
	if v < 0 {
		return 0, fmt.Errorf("dimension must not be negative, got %d", v)
	}
	return v, nil
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s HEIGHT WIDTH\n", os.Args[0])
		os.Exit(2)
	}

	height, err := parseDimension(os.Args[1])
	if err != nil {
		log.Error("bad HEIGHT argument: ", err)
		os.Exit(2)
	}
	width, err := parseDimension(os.Args[2])
	if err != nil {
		log.Error("bad WIDTH argument: ", err)
		os.Exit(2)
	}

	box := lockbox.New(height, width, createRand())
	log.WithFields(logrus.Fields{
		"height": height,
		"width":  width,
		"locked": box.IsLocked(),
	}).Debug("box shuffled")

	locked, err := lockbox.Open(box)
	if err != nil {
		// solver breakage, not a "still locked" verdict
		log.Error("unable to solve box: ", err)
		os.Exit(2)
	}

	if locked {
		fmt.Println("BOX: LOCKED!")
		os.Exit(1)
	}
	fmt.Println("BOX: OPENED!")
}
