package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"github.com/mufasadev/minibank/pkg/util/repeat"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

var URL, _ = os.LookupEnv("API_URL")
var PORT, _ = os.LookupEnv("API_PORT")
var baseURL = fmt.Sprintf("http://%s:%s", URL, PORT)
var depositURL = baseURL + "/api/v1/account/deposit"
var withdrawURL = baseURL + "/api/v1/account/withdraw"
var balanceURL = baseURL + "/api/v1/account/balance"
var healthURL = baseURL + "/health"

const (
	workers  = 10
	duration = 30 * time.Second
)

type Movement struct {
	Amount float64 `json:"amount"`
}

func main() {
	if err := waitForServer(); err != nil {
		fmt.Println("Server did not become ready:", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup
	wg.Add(workers + 1)
	var movementResponse interface{}
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			start := time.Now()
			for time.Since(start) < duration {
				resp, err := sendMovement()
				if err != nil && resp != nil {
					fmt.Println("Error sending movement:", err)
				}

				if resp != nil {
					err = json.NewDecoder(resp.Body).Decode(&movementResponse)
					if err != nil {
						resp.Body.Close()
						fmt.Printf("error decoding movement response: %v", err)
					}

					fmt.Printf("Movement sent. Status code: %d, Message: %v\n", resp.StatusCode, movementResponse)
					resp.Body.Close()
				}

				time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)
			}
		}()
	}

	go func() {
		defer wg.Done()
		ticker := time.NewTicker(5 * time.Second)
		for range ticker.C {
			printBalance()
		}
	}()

	wg.Wait()
	printBalance()
}

func waitForServer() error {
	return repeat.Repeat(func() error {
		resp, err := http.Get(healthURL)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("wrong status code: %d", resp.StatusCode)
		}
		return nil
	}, 10, 500*time.Millisecond)
}

func sendMovement() (*http.Response, error) {
	url := depositURL
	if rand.Float64() < 0.5 {
		url = withdrawURL
	}

	movement := Movement{Amount: float64(int(rand.Float64()*100000)+100) / 100}
	data, err := json.Marshal(movement)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}

	// withdrawals past the balance come back 400; that is expected load
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		resp.Body.Close()
		return nil, fmt.Errorf("wrong status code: %d", resp.StatusCode)
	}
	return resp, nil
}

func printBalance() {
	resp, err := http.Get(balanceURL)
	if err != nil {
		fmt.Println("Error getting balance:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Println("Wrong status code:", resp.StatusCode)
		return
	}

	var balanceResponse struct {
		Balance float64 `json:"balance"`
	}
	err = json.NewDecoder(resp.Body).Decode(&balanceResponse)
	if err != nil {
		fmt.Println("Error decoding balance:", err)
		return
	}

	fmt.Printf("Account balance: %.2f\n", balanceResponse.Balance)
}
