// jrpccall issues a single JSON-RPC 2.0 call over a raw TCP connection and
// prints the decoded response.
//
//	jrpccall --addr localhost:8082 --path math-api --method mul --params '[2.5,3.5]' --id 1
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"jsonrpc-client/client"
	"jsonrpc-client/middleware"
	"jsonrpc-client/protocol"
)

var log = logrus.New()

var (
	addr     string
	path     string
	method   string
	params   string
	id       string
	keyName  string
	keyValue string
	timeout  time.Duration
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "jrpccall",
	Short: "Send one JSON-RPC 2.0 request over a raw socket",
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}

		var p any
		if err := json.Unmarshal([]byte(params), &p); err != nil {
			return fmt.Errorf("invalid --params: %w", err)
		}

		var cred *protocol.Credential
		if keyName != "" {
			cred = protocol.NewCredential(keyName, keyValue)
		}

		c := client.NewClient(
			protocol.NewAddress(addr, path),
			cred,
			timeout,
			middleware.LoggingMiddleware(log),
		)

		resp, err := c.Call(method, p, id)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", "", "target host:port (required)")
	rootCmd.Flags().StringVar(&path, "path", "", "request path")
	rootCmd.Flags().StringVar(&method, "method", "", "JSON-RPC method name (required)")
	rootCmd.Flags().StringVar(&params, "params", "null", "params as a JSON value")
	rootCmd.Flags().StringVar(&id, "id", "1", "correlation id")
	rootCmd.Flags().StringVar(&keyName, "key-name", "", "credential header name")
	rootCmd.Flags().StringVar(&keyValue, "key-value", "", "credential header value")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "connect/write/read timeout")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.MarkFlagRequired("addr")
	rootCmd.MarkFlagRequired("method")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
