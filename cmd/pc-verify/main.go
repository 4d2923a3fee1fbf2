package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	privatecaptcha "github.com/privatecaptcha/client-go"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fatal("usage: pc-verify <solution | -> [sitekey]")
	}

	solution := os.Args[1]
	if solution == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal("read stdin: %v", err)
		}
		solution = strings.TrimSpace(string(data))
	}

	var sitekey string
	if len(os.Args) > 2 {
		sitekey = os.Args[2]
	}

	var opts []privatecaptcha.Option
	if domain := os.Getenv("PC_DOMAIN"); domain != "" {
		opts = append(opts, privatecaptcha.WithDomain(domain))
	}

	client, err := privatecaptcha.New(os.Getenv("PC_API_KEY"), opts...)
	if err != nil {
		fatal("create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	out, err := client.Verify(ctx, privatecaptcha.VerifyInput{
		Solution: solution,
		Sitekey:  sitekey,
	})
	if err != nil {
		fatal("verify: %v", err)
	}

	result := struct {
		OK        bool   `json:"ok"`
		Success   bool   `json:"success"`
		Code      int    `json:"code"`
		Error     string `json:"error,omitempty"`
		Origin    string `json:"origin,omitempty"`
		Timestamp string `json:"timestamp,omitempty"`
		TraceID   string `json:"traceId,omitempty"`
		Attempts  int    `json:"attempts"`
	}{
		OK:        out.OK(),
		Success:   out.Success,
		Code:      int(out.Code),
		Error:     out.ErrorMessage(),
		Origin:    out.Origin,
		Timestamp: out.Timestamp,
		TraceID:   out.TraceID,
		Attempts:  out.Attempts,
	}

	if err := json.NewEncoder(os.Stdout).Encode(result); err != nil {
		fatal("encode output: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
