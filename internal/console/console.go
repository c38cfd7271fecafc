// Package console reads roommate fields from a terminal and prints records.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roommates-project/roommates/internal/database/models"
)

var ErrInvalidInput = errors.New("invalid input")

const Separator = "-------------------------------"

type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) Println(a ...interface{}) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Heading(title string) {
	c.Println(Separator)
	c.Println(title)
}

func (c *Console) Room(room models.Room) {
	c.Printf("%d %s %d\n", room.ID, room.Name, room.MaxOccupancy)
}

func (c *Console) Roommate(roommate models.Roommate) {
	c.Printf("%d %s %s %d\n", roommate.ID, roommate.FirstName, roommate.LastName, roommate.RentPortion)
	if roommate.Room != nil {
		c.Printf("  lives in %s\n", roommate.Room.Name)
	}
}

// Prompt prints label and returns the next line of input, trimmed.
func (c *Console) Prompt(label string) (line string, err error) {
	c.Printf("%s: ", label)

	if !c.in.Scan() {
		if err = c.in.Err(); err == nil {
			err = io.ErrUnexpectedEOF
		}
		err = fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
		return
	}

	line = strings.TrimSpace(c.in.Text())
	return
}

func (c *Console) PromptInt(label string) (n int, err error) {
	var line string
	if line, err = c.Prompt(label); err != nil {
		return
	}

	if n, err = strconv.Atoi(line); err != nil {
		err = fmt.Errorf("%w: %s must be a whole number: %w", ErrInvalidInput, strings.ToLower(label), err)
	}
	return
}

// PromptRoommate collects the fields a new roommate needs from the user.
// Only the type of the rent portion is checked.
func (c *Console) PromptRoommate() (roommate models.Roommate, err error) {
	if roommate.FirstName, err = c.Prompt("First Name"); err != nil {
		return
	}
	if roommate.LastName, err = c.Prompt("Last Name"); err != nil {
		return
	}
	roommate.RentPortion, err = c.PromptInt("Rent Portion")
	return
}
