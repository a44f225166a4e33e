package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"persona-emails/domain"
	"persona-emails/internal"
	"persona-emails/repositories"
	"persona-emails/validation"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
)

const defaultPath = "./data/badger"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run dispatches between a read-only dump of the store and persona seeding.
func run(args []string, out io.Writer) error {
	if len(args) > 0 && args[0] == "persona" {
		return personaCommand(args[1:], out)
	}

	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	dbPath := fs.String("db", defaultPath, "Path to badger DB")
	// emails by default, "to:" shows the recipient index
	prefix := fs.String("prefix", "email:", "Prefix to scan")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := openDB(*dbPath, true)
	if err != nil {
		return fmt.Errorf("error while opening Badger: %w", err)
	}
	defer db.Close()

	rows, err := internal.Scan(db, *prefix, internal.DefaultMapper)
	if err != nil {
		return err
	}
	internal.WriteTable(out, rows)
	return nil
}

func personaCommand(args []string, out io.Writer) error {
	if len(args) == 0 || args[0] != "add" {
		return fmt.Errorf("usage: inspect persona add -uid UID -email ADDR [-name NAME] [-id ID]")
	}
	fs := flag.NewFlagSet("persona add", flag.ContinueOnError)
	dbPath := fs.String("db", defaultPath, "Path to badger DB")
	id := fs.String("id", "", "persona id, generated when empty")
	uid := fs.String("uid", "", "user id the persona belongs to")
	email := fs.String("email", "", "persona email address")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *uid == "" {
		return fmt.Errorf("-uid is required")
	}
	candidate := validation.Candidate{"to": []domain.Participant{{Address: *email, Name: *name}}}
	if err := validation.Validate(candidate); err != nil {
		return fmt.Errorf("invalid persona email: %w", err)
	}

	db, err := openDB(*dbPath, false)
	if err != nil {
		return fmt.Errorf("error while opening Badger: %w", err)
	}
	defer db.Close()

	personaID, err := repositories.NewPersonaRepository(db).CreatePersona(context.Background(), domain.Persona{
		ID:    *id,
		UID:   *uid,
		Email: strings.TrimSpace(*email),
		Name:  *name,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, color.Green.Render("persona ")+personaID)
	return nil
}

func openDB(path string, readOnly bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(readOnly).
		WithLogger(nil)
	return badger.Open(opts)
}
