package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/odia-ai/voicegate/pkg/client"

	"github.com/google/uuid"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")
	agentFlag := flag.String("agent", "lexi", "agent id")
	speakFlag := flag.Bool("speak", false, "synthesize input instead of chatting")

	flag.Parse()

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	if *speakFlag {
		speak(ctx, c, *agentFlag)
		return
	}

	chat(ctx, c, *agentFlag)
}

func chat(ctx context.Context, c *client.Client, agent string) {
	reader := bufio.NewReader(os.Stdin)
	output := os.Stdout

LOOP:
	for {
		output.WriteString(">>> ")
		input, err := reader.ReadString('\n')

		if err != nil {
			panic(err)
		}

		input = strings.TrimSpace(input)

		if input == "" {
			continue LOOP
		}

		reply, err := c.Chats.New(ctx, client.ChatRequest{
			Agent: agent,

			Text: input,
		})

		if err != nil {
			output.WriteString(err.Error() + "\n")
			continue LOOP
		}

		output.WriteString(reply.Text)
		output.WriteString("\n")
		output.WriteString("\n")
	}
}

func speak(ctx context.Context, c *client.Client, agent string) {
	reader := bufio.NewReader(os.Stdin)
	output := os.Stdout

LOOP:
	for {
		output.WriteString(">>> ")
		input, err := reader.ReadString('\n')

		if err != nil {
			panic(err)
		}

		input = strings.TrimSpace(input)

		if input == "" {
			continue LOOP
		}

		speech, err := c.Speeches.New(ctx, client.SpeechRequest{
			Text:  input,
			Agent: agent,
		})

		if err != nil {
			output.WriteString(err.Error() + "\n")
			continue LOOP
		}

		name := uuid.New().String() + ".wav"

		os.WriteFile(name, speech.Content, 0600)
		fmt.Println("Saved: " + name)

		output.WriteString("\n")
	}
}
