package handlers

import (
	"trivia-platform/models"
)

var testParticipant = models.Participant{
	ID:         "p1",
	TeamName:   "Red Pandas",
	UniqueCode: "abc",
}

func redPandasDoc(fields map[string]interface{}) *models.LeaderboardDoc {
	return &models.LeaderboardDoc{ID: "doc1", Fields: fields}
}
