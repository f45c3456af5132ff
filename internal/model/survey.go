package model

// Configuration is the question set and video list a flow runs against
type Configuration struct {
	Questions []Question `json:"questions" bson:"questions"`
	Videos    []Video    `json:"videos" bson:"videos"`
}

// Clone returns a deep copy so callers can never alias the owner's slices
func (c Configuration) Clone() Configuration {
	out := Configuration{
		Questions: CloneQuestions(c.Questions),
		Videos:    CloneVideos(c.Videos),
	}
	return out
}

// CloneQuestions deep-copies a question list
func CloneQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}

// CloneVideos copies a video list
func CloneVideos(vs []Video) []Video {
	return append([]Video{}, vs...)
}

var defaultOptions = []string{"満足", "やや満足", "どちらともいえない", "やや不満", "不満"}

// DefaultConfiguration is the catalog used when nothing else is configured
func DefaultConfiguration() Configuration {
	texts := []string{
		"動画の内容は理解しやすかったですか？",
		"動画の長さは適切でしたか？",
		"動画の画質は良かったですか？",
		"動画の音質は良かったですか？",
		"全体的に満足できる内容でしたか？",
	}
	questions := make([]Question, 0, len(texts))
	for _, t := range texts {
		questions = append(questions, Question{
			Type:    QuestionTypeMultipleChoice,
			Text:    t,
			Options: append([]string{}, defaultOptions...),
		})
	}

	return Configuration{
		Questions: questions,
		Videos: []Video{
			{ID: "uWUHqSvPRjA", Title: "動画1: 製品紹介"},
			{ID: "FkJODF2lHuk", Title: "動画2: 使用方法"},
			{ID: "b1vo26cSLtA", Title: "動画3: お客様の声"},
		},
	}
}
