// create-admin provisions a back-office account from the command line:
//
//	create-admin -username admin -name "Site Admin"
//
// The password is read from the ADMIN_PASSWORD env var or prompted on stdin.
// DB settings come from the same environment the server uses.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yoonsol/coffee-franchise-site/internal/config"
	"github.com/yoonsol/coffee-franchise-site/internal/database"
	"github.com/yoonsol/coffee-franchise-site/internal/repository"
)

func main() {
	username := flag.String("username", "", "login username (required)")
	name := flag.String("name", "", "display name (defaults to username)")
	flag.Parse()

	if *username == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *name == "" {
		*name = *username
	}

	_ = godotenv.Load()
	cfg := config.Load()

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		fmt.Print("Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			log.Fatalf("read password: %v", err)
		}
		password = strings.TrimSpace(line)
	}
	if len(password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database unavailable: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := repository.NewAdminRepo(db).Create(ctx, *username, password, *name, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("create admin: %v", err)
	}
	fmt.Printf("created admin %q (id=%d)\n", *username, id)
}
