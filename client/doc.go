// Package client provides a Go client for the passgen password service (https://pw.ig.lc).
//
// # Installation
//
//	go get github.com/tombowditch/passgen-serv/client
//
// # Quick Start
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		"github.com/tombowditch/passgen-serv/client"
//	)
//
//	func main() {
//		c := client.New()
//
//		// Generate a password with the server defaults (24 chars, printable ASCII)
//		pw, err := c.Password(context.Background())
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("Password:", pw)
//
//		// Roll a fair die
//		n, err := c.Int(context.Background(), 1, 6)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("Roll:", n)
//	}
//
// # Custom Length and Charset
//
//	pw, err := c.PasswordWithOptions(ctx, client.PasswordOptions{
//		Length:  64,
//		Charset: "hex",
//	})
//
// # One-Time Shares
//
// To hand a password to someone without putting the secret itself in a
// chat log, request a share link. The link can be redeemed exactly once:
//
//	url, err := c.PasswordWithOptions(ctx, client.PasswordOptions{Share: true})
//	// send url to the recipient...
//	pw, err := c.Redeem(ctx, url) // works once, then IsNotFound
//
// # Custom Configuration
//
//	c := client.New(
//		client.WithBaseURL("https://your-passgen-instance.com"),
//		client.WithTimeout(10 * time.Second),
//	)
//
// # Error Handling
//
//	pw, err := c.Redeem(ctx, url)
//	if client.IsNotFound(err) {
//		// Share expired or was already redeemed
//	}
//	if client.IsRateLimited(err) {
//		// Too many requests, back off
//	}
package client
