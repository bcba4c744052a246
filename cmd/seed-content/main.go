// cmd/seed-content - Imports quiz questions and the cricket player pool
// from JSON files into the configured database.
//
// Usage:
//
//	seed-content -questions ./data/questions.json -players ./data/players.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"crickarena/database"
	"crickarena/models"
)

type questionFile struct {
	Questions []models.QuizQuestion `json:"questions"`
}

type playerFile struct {
	Players []models.CricketPlayer `json:"players"`
}

func main() {
	questionsPath := flag.String("questions", "", "path to quiz questions JSON")
	playersPath := flag.String("players", "", "path to cricket players JSON")
	flag.Parse()

	if *questionsPath == "" && *playersPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: pass -questions and/or -players")
		flag.Usage()
		os.Exit(2)
	}

	database.InitDB()
	defer database.CloseDB()
	db := database.GetDB()

	if *questionsPath != "" {
		data, err := os.ReadFile(*questionsPath)
		if err != nil {
			log.Fatal("Failed to read questions file:", err)
		}

		var qf questionFile
		if err := json.Unmarshal(data, &qf.Questions); err != nil {
			// Allow either a bare array or a wrapped {"questions": [...]} file.
			if err := json.Unmarshal(data, &qf); err != nil {
				log.Fatal("Failed to parse questions JSON:", err)
			}
		}

		valid := qf.Questions[:0]
		for _, q := range qf.Questions {
			if q.Question == "" || !validOption(q.CorrectOption) {
				log.Printf("Skipping malformed question: %q", q.Question)
				continue
			}
			if q.Points <= 0 {
				q.Points = 10
			}
			q.IsActive = true
			valid = append(valid, q)
		}

		if len(valid) > 0 {
			if err := db.CreateInBatches(&valid, 200).Error; err != nil {
				log.Fatal("Failed to insert questions:", err)
			}
		}
		fmt.Printf("Imported %d quiz questions\n", len(valid))
	}

	if *playersPath != "" {
		data, err := os.ReadFile(*playersPath)
		if err != nil {
			log.Fatal("Failed to read players file:", err)
		}

		var pf playerFile
		if err := json.Unmarshal(data, &pf.Players); err != nil {
			if err := json.Unmarshal(data, &pf); err != nil {
				log.Fatal("Failed to parse players JSON:", err)
			}
		}

		valid := pf.Players[:0]
		for _, p := range pf.Players {
			if p.Name == "" || !validRole(p.Role) {
				log.Printf("Skipping malformed player: %q", p.Name)
				continue
			}
			if p.CreditValue <= 0 {
				p.CreditValue = 8
			}
			p.IsActive = true
			valid = append(valid, p)
		}

		if len(valid) > 0 {
			if err := db.CreateInBatches(&valid, 200).Error; err != nil {
				log.Fatal("Failed to insert players:", err)
			}
		}
		fmt.Printf("Imported %d cricket players\n", len(valid))
	}
}

func validOption(opt string) bool {
	return opt == "A" || opt == "B" || opt == "C" || opt == "D"
}

func validRole(role string) bool {
	switch role {
	case models.RoleBatsman, models.RoleBowler, models.RoleAllrounder, models.RoleWicketkeeper:
		return true
	}
	return false
}
