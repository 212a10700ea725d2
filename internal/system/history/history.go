// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive history file.
package history

import (
	"io"
	"log"
	"os"
)

// Load calls read with the contents of the history file.
// A missing history file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	defer f.Close()

	n, err := read(f)
	if err != nil {
		return err
	}

	log.Printf("loaded %d history entries from %s", n, f.Name())

	return nil
}

// Save calls write to replace the contents of the history file.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
