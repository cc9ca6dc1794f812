package main

import (
	"Relief-Aid-Backend/cmd/config"
	"Relief-Aid-Backend/internal/utils"
	"Relief-Aid-Backend/pkg/admin"
	"Relief-Aid-Backend/pkg/jwt"
	"context"
	"fmt"
	"log"
	"os"
)

// Creates or updates the admin account used for the dashboard login.
// Usage: createadmin <username> <password>, or set ADMIN_USERNAME and
// ADMIN_PASSWORD environment variables.
func main() {
	utils.LoadConfig()

	args := os.Args[1:]
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" && len(args) > 0 {
		username = args[0]
	}
	if password == "" && len(args) > 1 {
		password = args[1]
	}

	if username == "" || password == "" {
		fmt.Println("Usage: createadmin <username> <password>")
		fmt.Println("OR set ADMIN_USERNAME and ADMIN_PASSWORD environment variables")
		os.Exit(1)
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	adminService := admin.NewAdminService(admin.NewAdminRepository(db), jwt.NewJWTService())
	if err := adminService.UpsertAdmin(context.Background(), username, password); err != nil {
		log.Fatalf("Error creating admin user: %v", err)
	}

	fmt.Printf("Admin user '%s' created successfully.\n", username)
}
