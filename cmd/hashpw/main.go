package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/carriedev/hazellab-backend/pkg/config"
	"github.com/carriedev/hazellab-backend/pkg/security"
)

// hashpw prints an argon2id hash for the given password, or generates a
// temporary password first when none is supplied. Useful for seeding the
// first admin account.
func main() {
	length := flag.Int("length", 12, "generated password length when no argument is given")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	password := flag.Arg(0)
	if password == "" {
		password, err = security.GenerateTempPassword(*length)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to generate password: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("password:", password)
	}

	hash, err := security.HashPassword(password, cfg.Password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("hash:", hash)
}
