package service

import (
	"github.com/yourusername/skillgram-api/internal/domain/entity"
)

// ScoreSubmission подсчитывает результат отправки ответов.
// Чистая функция над уже выбранными строками: не ходит в БД и не возвращает
// ошибок ни при какой форме входа.
//
// Правила подсчета:
//   - для каждого вопроса набора, на который есть ответ, выбранный вариант
//     сравнивается с правильным на строгое равенство;
//   - на каждый отвеченный вопрос создается ровно одна запись AnswerRecord;
//   - пропущенные вопросы не дают записи и не влияют на счет;
//   - ответы на вопросы, которых нет в наборе, игнорируются.
//
// Итоговый счет равен числу записей с IsCorrect=true и не превышает len(questions).
func ScoreSubmission(questions []entity.Question, answers map[uint]int) (int, []entity.AnswerRecord) {
	score := 0
	records := make([]entity.AnswerRecord, 0, len(answers))

	for _, question := range questions {
		selected, answered := answers[question.ID]
		if !answered {
			continue
		}

		isCorrect := question.IsCorrect(selected)
		if isCorrect {
			score++
		}

		records = append(records, entity.AnswerRecord{
			QuestionID:     question.ID,
			SelectedOption: selected,
			IsCorrect:      isCorrect,
		})
	}

	return score, records
}
