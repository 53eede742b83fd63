package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

// seedQuestion описывает вопрос для начального наполнения
type seedQuestion struct {
	text          string
	option1       string
	option2       string
	option3       string
	option4       string
	correctOption int
}

// seedAssessment описывает тест вместе с вопросами
type seedAssessment struct {
	title       string
	description string
	category    string
	durationMin int
	questions   []seedQuestion
}

var seedData = []seedAssessment{
	{
		title:       "Verbal Ability Test",
		description: "Test your verbal reasoning and language skills",
		category:    "verbal",
		durationMin: 15,
		questions: []seedQuestion{
			{"Choose the word that is most similar in meaning to 'ABUNDANT':", "Scarce", "Plentiful", "Limited", "Rare", 2},
			{"Select the correctly spelled word:", "Occurence", "Occurance", "Occurrence", "Occurrance", 3},
			{"Choose the antonym of 'OPTIMISTIC':", "Hopeful", "Positive", "Pessimistic", "Cheerful", 3},
			{"Complete the sentence: 'She was ___ to learn that she had won the prize.'", "thrilled", "boring", "angry", "sad", 1},
			{"What is the meaning of the idiom 'break the ice'?", "To be very cold", "To start a conversation", "To break something", "To stop talking", 2},
			{"Choose the word that best completes: 'The athlete's performance was ___.'", "terrible", "outstanding", "average", "poor", 2},
			{"Identify the grammatically correct sentence:", "She don't like coffee", "She doesn't likes coffee", "She doesn't like coffee", "She doesn't liking coffee", 3},
			{"What is the synonym of 'BRIEF'?", "Long", "Short", "Extended", "Detailed", 2},
			{"Choose the correct plural form of 'analysis':", "Analysises", "Analysis", "Analyses", "Analysies", 3},
			{"What does the word 'BENEVOLENT' mean?", "Kind and generous", "Cruel and harsh", "Angry and upset", "Sad and depressed", 1},
		},
	},
	{
		title:       "Numerical Ability Test",
		description: "Test your mathematical and numerical reasoning skills",
		category:    "numerical",
		durationMin: 20,
		questions: []seedQuestion{
			{"What is 25% of 200?", "25", "50", "75", "100", 2},
			{"If a product costs $80 after a 20% discount, what was the original price?", "$96", "$100", "$120", "$160", 2},
			{"What is the next number in the sequence: 2, 4, 8, 16, ?", "24", "28", "32", "36", 3},
			{"A train travels 120 km in 2 hours. What is its average speed?", "40 km/h", "50 km/h", "60 km/h", "80 km/h", 3},
			{"If 3x + 5 = 20, what is the value of x?", "3", "5", "7", "10", 2},
			{"What is 15% of 300?", "30", "45", "60", "75", 2},
			{"A rectangle has a length of 12 cm and width of 8 cm. What is its area?", "48 cm²", "72 cm²", "96 cm²", "120 cm²", 3},
			{"What is the average of 10, 20, 30, and 40?", "20", "25", "30", "35", 2},
			{"If a shirt costs $45 and is on sale for 30% off, what is the sale price?", "$13.50", "$27.00", "$31.50", "$35.00", 3},
			{"What is 8² (8 squared)?", "16", "32", "64", "128", 3},
		},
	},
}

func main() {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = "host=localhost port=5432 user=postgres password=postgres dbname=skillgram_db sslmode=disable"
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	log.Println("Наполняем базу начальными тестами...")

	for _, a := range seedData {
		var existing int
		if err := db.QueryRow(`SELECT count(*) FROM assessments WHERE title = $1`, a.title).Scan(&existing); err != nil {
			log.Fatalf("Не удалось проверить тест '%s': %v", a.title, err)
		}
		if existing > 0 {
			fmt.Printf("Тест '%s' уже существует, пропускаем\n", a.title)
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			log.Fatal(err)
		}

		var assessmentID int64
		err = tx.QueryRow(
			`INSERT INTO assessments (title, description, category, duration_min, total_questions, created_at)
			 VALUES ($1, $2, $3, $4, $5, now()) RETURNING id`,
			a.title, a.description, a.category, a.durationMin, len(a.questions),
		).Scan(&assessmentID)
		if err != nil {
			tx.Rollback()
			log.Fatalf("Не удалось создать тест '%s': %v", a.title, err)
		}

		for i, q := range a.questions {
			_, err = tx.Exec(
				`INSERT INTO questions (assessment_id, text, option1, option2, option3, option4, correct_option, position, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`,
				assessmentID, q.text, q.option1, q.option2, q.option3, q.option4, q.correctOption, i+1,
			)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Не удалось добавить вопрос #%d теста '%s': %v", i+1, a.title, err)
			}
		}

		if err := tx.Commit(); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Создан тест '%s' с %d вопросами\n", a.title, len(a.questions))
	}

	log.Println("Наполнение базы завершено.")
}
