package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"dog-personality-quiz/internal/config"
	"dog-personality-quiz/internal/db"
	"dog-personality-quiz/internal/domain"
	"dog-personality-quiz/internal/llm"
	"dog-personality-quiz/internal/repository"
	"dog-personality-quiz/internal/service"
	"dog-personality-quiz/internal/storage"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("schema: %v", err)
	}

	sessionRepo := repository.NewPgSessionRepository(pool)
	questionRepo := repository.NewPgQuestionRepository(pool)
	answerRepo := repository.NewPgAnswerRepository(pool)
	resultRepo := repository.NewPgResultRepository(pool)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	imageClient := llm.NewImageClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.ImageModel, cfg.ImageSize, logger)
	imageStore, err := storage.NewFileStore(cfg.ImageSavePath, cfg.ImagePublicBaseURL)
	if err != nil {
		log.Fatalf("image store: %v", err)
	}

	quizSvc := service.NewQuizService(sessionRepo, questionRepo, answerRepo, nil, logger, nil)
	resultSvc := service.NewResultService(
		sessionRepo,
		answerRepo,
		resultRepo,
		service.NewTraitProfiler(nil),
		service.NewTitleGenerator(llmClient, cfg.TitleTimeout, logger, nil),
		service.NewTraitImageService(imageClient, imageStore, cfg.ImageTimeout, cfg.ImageConcurrency, cfg.PlaceholderBaseURL, logger, nil),
		nil,
		nil,
		logger,
		nil,
	)
	chatSvc := service.NewChatService(sessionRepo, resultRepo, llmClient, nil, cfg.ChatTimeout, logger)

	fmt.Println("===== Dog Personality Quiz =====")
	dogName := readLine(reader, "Nombre del perro: ")
	breed := readLine(reader, "Raza (enter para omitir): ")

	started, err := quizSvc.StartSession(ctx, service.StartSessionInput{DogName: dogName, Breed: breed})
	if err != nil {
		log.Fatalf("iniciar sesion: %v", err)
	}
	fmt.Printf("Sesion: %s\n\n", started.Slug)

	questions, err := quizSvc.Questions(ctx, started.Slug)
	if err != nil {
		log.Fatalf("preguntas: %v", err)
	}
	for _, q := range questions {
		fmt.Printf("[%d/%d] %s\n", q.OrderIndex, len(questions), q.Text)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}
		choice := readChoice(reader, "Opcion: ", len(q.Options))
		if err := quizSvc.SubmitAnswer(ctx, started.Slug, q.ID, q.Options[choice-1]); err != nil {
			fmt.Printf("error guardando respuesta: %v\n", err)
		}
		fmt.Println()
	}

	fmt.Println("Generando resultado...")
	result, err := resultSvc.Generate(ctx, started.Slug)
	if err != nil {
		log.Fatalf("generar resultado: %v", err)
	}
	printResult(result)

	fmt.Println("---- Modo Chat (escribe 'salir' para terminar) ----")
	for {
		text := readLine(reader, "Tu > ")
		if text == "" {
			continue
		}
		if strings.EqualFold(text, "salir") || strings.EqualFold(text, "exit") {
			return
		}
		reply, err := chatSvc.Chat(ctx, started.Slug, text)
		if err != nil {
			fmt.Printf("error generando respuesta: %v\n", err)
			continue
		}
		fmt.Printf("Experto > %s\n", reply)
	}
}

func printResult(result domain.Result) {
	fmt.Printf("\n%s\n%s\n\n", result.Title, result.Summary)
	for _, trait := range domain.TraitOrder {
		ts := result.Scores[trait]
		fmt.Printf("%s %-13s %3d  %s\n", ts.Emoji, trait, ts.Score, ts.Label)
		fmt.Printf("   %s\n", ts.Description)
		if ref := result.Images[trait]; ref != "" {
			fmt.Printf("   imagen: %s\n", ref)
		}
	}
	fmt.Println()
}

func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		os.Exit(0)
	}
	return strings.TrimSpace(line)
}

// readChoice insiste hasta recibir un número en [1, max].
func readChoice(reader *bufio.Reader, prompt string, max int) int {
	for {
		v, err := strconv.Atoi(readLine(reader, prompt))
		if err == nil && v >= 1 && v <= max {
			return v
		}
		fmt.Printf("Seleccion invalida, elige entre 1 y %d.\n", max)
	}
}
