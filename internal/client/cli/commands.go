package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/padre/internal/accountdb"
	"github.com/dmitrijs2005/padre/internal/client/models"
)

func (a *App) printListing() {
	if len(a.listing) == 0 {
		fmt.Println("No accounts.")
		return
	}
	for i, acc := range a.listing {
		iter := acc.Iteration
		if iter == "" {
			iter = "-"
		}
		fmt.Printf("%3d  %s  %s  (iteration %s, %d chars)\n", i+1, acc.Domain, acc.Username, iter, acc.Length)
	}
}

func (a *App) list(ctx context.Context) {
	rows, err := a.accountService.List(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	a.listing = rows
	a.printListing()
}

func (a *App) find(ctx context.Context, domain string) {
	rows, err := a.accountService.Find(ctx, domain)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	a.listing = rows
	a.printListing()
}

// fromListing resolves a 1-based index argument against the last listing.
func (a *App) fromListing(arg string) (*models.Account, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.listing) {
		fmt.Println("No such entry; run 'list' first.")
		return nil, false
	}
	return &a.listing[n-1], true
}

func (a *App) show(ctx context.Context, arg string) {
	acc, ok := a.fromListing(arg)
	if !ok {
		return
	}

	master, err := a.masterKey()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	password, err := a.deriveService.Derive(ctx, master, &acc.Account)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("%s@%s: %s\n", acc.Username, acc.Domain, password)
}

func (a *App) deriveAll(ctx context.Context) {
	rows, err := a.accountService.List(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(rows) == 0 {
		fmt.Println("No accounts.")
		return
	}

	master, err := a.masterKey()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	recs := make([]accountdb.Account, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, r.Account)
	}

	for _, res := range a.deriveService.DeriveAll(ctx, master, recs) {
		if res.Err != nil {
			fmt.Printf("%s@%s: error: %v\n", res.Account.Username, res.Account.Domain, res.Err)
			continue
		}
		fmt.Printf("%s@%s: %s\n", res.Account.Username, res.Account.Domain, res.Password)
	}
}

func (a *App) add(ctx context.Context) {
	domain, err := GetSimpleText(a.reader, "Domain", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	username, err := GetSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	iteration, err := GetSimpleText(a.reader, "Iteration (may be empty)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	length, err := GetInt(a.reader, "Password length", os.Stdout)
	if err != nil {
		fmt.Println("Error: invalid length")
		return
	}
	spec, err := GetSimpleText(a.reader, "Charset spec (empty for all printable ASCII)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	acc := accountdb.Account{
		Domain:      domain,
		Username:    username,
		Iteration:   iteration,
		Length:      length,
		CharsetSpec: spec,
	}
	if err := a.accountService.Add(ctx, acc); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Saved.")
}

func (a *App) delete(ctx context.Context, arg string) {
	acc, ok := a.fromListing(arg)
	if !ok {
		return
	}
	if err := a.accountService.Delete(ctx, acc.Id); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Deleted.")
}

// importFile loads the flat-text database at path, or the configured
// database when path is empty.
func (a *App) importFile(ctx context.Context, path string) {
	if path == "" {
		path = a.config.DatabasePath
	}
	n, err := a.accountService.Import(ctx, path)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Imported %d accounts.\n", n)
}

func (a *App) exportFile(ctx context.Context, path string) {
	if path == "" {
		path = a.config.DatabasePath
	}
	if err := a.accountService.Export(ctx, path); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Exported.")
}
