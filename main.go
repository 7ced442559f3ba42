package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"quiz-engine/internal/db"
	"quiz-engine/internal/difficulty"
	"quiz-engine/internal/event"
	"quiz-engine/internal/generator"
	"quiz-engine/internal/handlers"
	"quiz-engine/internal/repository"
	"quiz-engine/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	// RabbitMQ event publisher
	var publisher event.Publisher = event.NopPublisher{}
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	if rabbitURL != "" && eventExchange != "" {
		amqpPublisher, err := event.NewAMQPPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = amqpPublisher
	} else {
		log.Println("RabbitMQ not configured, engine events will not be published")
	}
	defer publisher.Close()

	// Content generator (Groq-compatible OpenAI API)
	gen := generator.NewClient(
		os.Getenv("GENERATOR_API_KEY"),
		os.Getenv("GENERATOR_BASE_URL"),
		os.Getenv("GENERATOR_MODEL"),
	)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("quiz_engine")

	questionRepo := repository.NewQuestionRepository(database)
	learnerRepo := repository.NewLearnerRepository(database)
	interactionRepo := repository.NewInteractionRepository(database)

	engineService := service.NewEngineService(questionRepo, learnerRepo, interactionRepo, difficulty.DefaultWeights())
	adaptiveService := service.NewAdaptiveService(learnerRepo, questionRepo, gen)

	submitHandler := handlers.NewSubmitHandler(engineService)
	adaptiveHandler := handlers.NewAdaptiveHandler(adaptiveService)
	questionHandler := handlers.NewQuestionHandler(questionRepo)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":   "quiz-engine",
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	// Formula-based flow: grade, update difficulty, pick nearest next item.
	quiz := r.Group("/quiz")
	{
		quiz.POST("/start", func(c *gin.Context) {
			adaptiveHandler.Start(c)
			publisher.Publish("quiz.started", gin.H{
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		})
		quiz.POST("/submit", func(c *gin.Context) {
			submitHandler.SubmitAnswer(c)
			publisher.Publish("quiz.answer.submitted", gin.H{
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		})
		quiz.POST("/next", func(c *gin.Context) {
			adaptiveHandler.ManualNext(c)
			publisher.Publish("quiz.question.requested", gin.H{
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		})
	}

	// Unified adaptive flow: level transitions plus within-level stepping.
	adaptive := r.Group("/adaptive")
	{
		adaptive.POST("/start", func(c *gin.Context) {
			adaptiveHandler.Start(c)
			publisher.Publish("adaptive.started", gin.H{
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		})
		adaptive.POST("/next", func(c *gin.Context) {
			adaptiveHandler.Next(c)
			publisher.Publish("adaptive.question.requested", gin.H{
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		})
	}

	r.GET("/learner/:id", submitHandler.GetLearner)

	publicQuestion := r.Group("/public/question")
	{
		publicQuestion.GET("/", questionHandler.ListQuestions)
		publicQuestion.GET("/:id", questionHandler.GetQuestion)
	}

	protectedQuestion := r.Group("/protected/question")
	protectedQuestion.Use(func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})
	{
		protectedQuestion.POST("/", questionHandler.CreateQuestion)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	r.Run(":" + port)
}
