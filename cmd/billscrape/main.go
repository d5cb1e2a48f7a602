package main

import (
	"context"
	_ "time/tzdata"

	"congress-scraper/cmd/billscrape/commands"
	"congress-scraper/lib/serviceutil"
)

func main() {
	ctx, cancel := serviceutil.SignalContext(context.Background())
	defer cancel()

	err := commands.ExecuteContext(ctx)
	if err != nil {
		cancel()
		serviceutil.Fatal("billscrape failed", err)
	}
}
