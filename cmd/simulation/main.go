package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api/chat/v1"

// Simplified DTO for the script
type ChatReply struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	ProductInfo *struct {
		Product     string `json:"product"`
		Price       string `json:"price"`
		Stock       string `json:"stock"`
		StockStatus string `json:"stock_status"`
	} `json:"product_info"`
}

func main() {
	fmt.Println("=== Farm2Bag Chatbot Simulation Client ===")

	testCases := []string{
		"hello there",
		"help",
		"price of tomato",
		"show me mangoes",
		"add to cart tomato",
		"add to cart tomato",
		"view my cart",
		"buy now onion",
		"place order",
		"where is my order",
		"clear cart",
		"how do I grow spinach at home?",
	}

	client := &http.Client{Timeout: 30 * time.Second}
	jar := newSessionJar()

	for _, text := range testCases {
		color.Cyan("\nUSER: %s", text)

		start := time.Now()
		reply, err := sendMessage(client, jar, text)
		elapsed := time.Since(start)

		if err != nil {
			color.Red("Error: %v", err)
			continue
		}

		if reply.Error != "" {
			color.Red("BOT (error): %s", reply.Error)
		} else {
			color.Green("BOT: %s", reply.Message)
		}
		if reply.ProductInfo != nil {
			color.Yellow("     [%s | ₹%s | %s]", reply.ProductInfo.Product, reply.ProductInfo.Price, reply.ProductInfo.Stock)
		}
		fmt.Printf("     (%.2fs)\n", elapsed.Seconds())
	}
}

// sessionJar keeps the chat session cookie between requests so the cart
// belongs to one session for the whole run.
type sessionJar struct {
	cookie string
}

func newSessionJar() *sessionJar {
	return &sessionJar{}
}

func sendMessage(client *http.Client, jar *sessionJar, text string) (*ChatReply, error) {
	req, err := http.NewRequest("GET", baseURL+"/message?product="+url.QueryEscape(text), nil)
	if err != nil {
		return nil, err
	}
	if jar.cookie != "" {
		req.Header.Set("Cookie", jar.cookie)
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if c := res.Header.Get("Set-Cookie"); c != "" && jar.cookie == "" {
		jar.cookie = c
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		log.Printf("Unexpected status %d: %s", res.StatusCode, string(body))
	}

	var reply ChatReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
