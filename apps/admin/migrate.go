package main

import (
	"database/sql"
	"fmt"
	"syscall"

	"github.com/pressly/goose/v3"
	"golang.org/x/term"

	"github.com/impulsa/seguimiento/core"
	appfs "github.com/impulsa/seguimiento/fs"
	"github.com/impulsa/seguimiento/storage/database"
)

// mockable
var (
	gooseRunFunc     = goose.Run
	readPasswordFunc = term.ReadPassword
	dbConnectFunc    = connectDB
)

func connectDB(conf *core.Config) (*sql.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}
	return database.Open(conf)
}

func (cli *commandLine) migrate(args []string) error {
	// the admin credentials are only needed here; prompt rather than
	// requiring them in the environment
	if cli.conf.Database.AdminUser != "" && cli.conf.Database.AdminPassword == "" {
		fmt.Printf("Password for %s: ", cli.conf.Database.AdminUser)
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		if err != nil {
			return err
		}
		fmt.Println()
		cli.conf.Database.AdminPassword = string(pwd)
	}

	db, err := dbConnectFunc(cli.conf)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(appfs.FS)
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], db, "migrations", arguments...)
}
