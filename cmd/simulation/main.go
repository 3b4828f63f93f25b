package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

// Simplified DTOs for the script
type CreateSessionResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type SendChatRequest struct {
	ChatSessionID string `json:"chat_session_id"`
	Chat          string `json:"chat"`
}

type SendChatResponse struct {
	Data struct {
		Stage       string `json:"agent_stage"`
		DetailLevel string `json:"detail_level"`
		Intent      string `json:"intent"`
		Status      string `json:"status"`
		Reply       struct {
			Chat string `json:"chat"`
		} `json:"reply"`
	} `json:"data"`
}

var scenario = []string{
	"Tesla",
	"show me the entire report",
	"show it again",
	"what about risks",
	"hello",
}

func main() {
	baseURL := flag.String("base", "http://localhost:3000/api/research/v1", "research API base URL")
	token := flag.String("token", os.Getenv("RESEARCH_TOKEN"), "bearer token when the API requires one")
	flag.Parse()

	client := &apiClient{baseURL: *baseURL, token: *token}

	color.Cyan("=== Company Research Scenario ===")
	sessionID, err := client.createSession()
	if err != nil {
		color.Red("Failed to create session: %v", err)
		os.Exit(1)
	}
	color.Green("Session Created: %s", sessionID)

	for _, text := range scenario {
		color.Yellow("\nUSER: %s", text)

		start := time.Now()
		res, err := client.sendChat(sessionID, text)
		if err != nil {
			color.Red("Error: %v", err)
			continue
		}
		fmt.Printf("[%s] intent=%s stage=%s level=%s (%v)\n",
			res.Data.Status, res.Data.Intent, res.Data.Stage, res.Data.DetailLevel, time.Since(start).Round(time.Millisecond))
		fmt.Printf("AGENT: %s\n", res.Data.Reply.Chat)
	}
}

type apiClient struct {
	baseURL string
	token   string
}

func (c *apiClient) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reader = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, c.baseURL+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API Error %d: %s", resp.StatusCode, string(raw))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *apiClient) createSession() (string, error) {
	var res CreateSessionResponse
	if err := c.do("POST", "/session", nil, &res); err != nil {
		return "", err
	}
	return res.Data.ID, nil
}

func (c *apiClient) sendChat(sessionID, text string) (*SendChatResponse, error) {
	var res SendChatResponse
	err := c.do("POST", "/chat", SendChatRequest{ChatSessionID: sessionID, Chat: text}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
