// cmd/smsbot/main.go
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/districtfive/survey-backend/internal/config"
	"github.com/districtfive/survey-backend/internal/model"
	"github.com/districtfive/survey-backend/internal/sms"
)

const logFileName = "sms_log.json"

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  Single SMS: smsbot <phone_number> [name]")
	fmt.Println("  Bulk SMS:   smsbot --bulk <recipients_file.json>")
	fmt.Println()
	fmt.Println("Recipients file format:")
	fmt.Println(`  [{"phone": "1234567890", "name": "John Doe"}, ...]`)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	args := os.Args[1:]
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.LoadSMS()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bot := sms.NewBot(sms.NewTwilioProvider(cfg.AccountSID, cfg.AuthToken), cfg)

	if args[0] == "--bulk" {
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Error: Please provide recipients file")
			os.Exit(1)
		}

		data, err := os.ReadFile(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read recipients file: %v\n", err)
			os.Exit(1)
		}

		var recipients []model.Recipient
		if err := json.Unmarshal(data, &recipients); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid recipients file: %v\n", err)
			os.Exit(1)
		}

		// Best-effort run: per-recipient failures are reported in the
		// summary and the log, never as a non-zero exit.
		bot.SendBulk(recipients)
		if err := bot.SaveLog(logFileName); err != nil {
			log.Println("⚠️ failed to save log:", err)
		}
		return
	}

	phone := args[0]
	name := ""
	if len(args) > 1 {
		name = args[1]
	}

	record := bot.SendOne(phone, name)
	if !record.Success {
		fmt.Println("\nFailed to send SMS")
		os.Exit(1)
	}
	fmt.Println("\nSMS sent successfully!")
}
