// resetpw overwrites a user's password hash directly in the store. It is
// the only way to change a password; the web flow never updates one.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"quizhub/internal/auth"
	"quizhub/internal/config"
	"quizhub/internal/database"
	"quizhub/internal/entity"
	"quizhub/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	godotenv.Load()
	cfg := config.Load()

	fmt.Print("Username to reset: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read username: %w", err)
	}
	username := strings.TrimSpace(line)
	if username == "" {
		return errors.New("username must not be empty")
	}

	fmt.Print("New password: ")
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if len(passwordBytes) == 0 {
		return errors.New("password must not be empty")
	}

	hash, err := auth.HashPassword(string(passwordBytes))
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	users := repository.NewUserRepository(db)
	if err := users.UpdatePasswordHash(context.Background(), username, hash); err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return fmt.Errorf("user %q does not exist; sign in through the web app to create it first", username)
		}
		return err
	}

	fmt.Printf("Password for %q has been reset.\n", username)
	return nil
}
