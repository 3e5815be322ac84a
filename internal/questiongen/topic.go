package questiongen

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownTopic is returned by ParseTopic for names outside the topic table.
var ErrUnknownTopic = errors.New("unknown topic")

// Topic is a named filter restricting which question types are generated.
type Topic string

const (
	TopicAll         Topic = "all"
	TopicAddition    Topic = "addition"
	TopicSubtraction Topic = "subtraction"
	TopicFindResult  Topic = "find_result"
	TopicFindMissing Topic = "find_missing"
)

// DefaultTopic is used when no topic is requested.
const DefaultTopic = TopicAll

// TopicConfig describes a topic and the question types it allows.
type TopicConfig struct {
	ID             Topic
	TitleKey       string
	DescriptionKey string
	Emoji          string
	Color          string
	QuestionTypes  []QuestionType
}

// topicConfigs is ordered for display; "all" comes first.
var topicConfigs = []TopicConfig{
	{
		ID:             TopicAll,
		TitleKey:       "topic.all.title",
		DescriptionKey: "topic.all.description",
		Emoji:          "🎲",
		Color:          "#9B59B6",
		QuestionTypes:  AllQuestionTypes(),
	},
	{
		ID:             TopicAddition,
		TitleKey:       "topic.addition.title",
		DescriptionKey: "topic.addition.description",
		Emoji:          "➕",
		Color:          "#4ECDC4",
		QuestionTypes:  []QuestionType{AddFindSum, AddFindFirst, AddFindSecond},
	},
	{
		ID:             TopicSubtraction,
		TitleKey:       "topic.subtraction.title",
		DescriptionKey: "topic.subtraction.description",
		Emoji:          "➖",
		Color:          "#FF9F43",
		QuestionTypes:  []QuestionType{SubFindDiff, SubFindSubtrahend, SubFindMinuend},
	},
	{
		ID:             TopicFindResult,
		TitleKey:       "topic.find_result.title",
		DescriptionKey: "topic.find_result.description",
		Emoji:          "🎯",
		Color:          "#7CB342",
		QuestionTypes:  []QuestionType{AddFindSum, SubFindDiff},
	},
	{
		ID:             TopicFindMissing,
		TitleKey:       "topic.find_missing.title",
		DescriptionKey: "topic.find_missing.description",
		Emoji:          "🔍",
		Color:          "#FF6B9D",
		QuestionTypes:  []QuestionType{AddFindFirst, AddFindSecond, SubFindSubtrahend, SubFindMinuend},
	},
}

var topicIndex = func() map[Topic]TopicConfig {
	m := make(map[Topic]TopicConfig, len(topicConfigs))
	for _, c := range topicConfigs {
		m[c.ID] = c
	}
	return m
}()

// TopicConfigs returns all topic configurations in display order.
func TopicConfigs() []TopicConfig {
	out := make([]TopicConfig, len(topicConfigs))
	for i, c := range topicConfigs {
		c.QuestionTypes = slices.Clone(c.QuestionTypes)
		out[i] = c
	}
	return out
}

// TopicConfigFor returns the configuration for topic. The zero Topic
// resolves to DefaultTopic.
func TopicConfigFor(topic Topic) (TopicConfig, bool) {
	if topic == "" {
		topic = DefaultTopic
	}
	c, ok := topicIndex[topic]
	return c, ok
}

// QuestionTypesFor returns the question types allowed under topic.
// Unknown topics fall back to every type.
func QuestionTypesFor(topic Topic) []QuestionType {
	if c, ok := TopicConfigFor(topic); ok {
		return slices.Clone(c.QuestionTypes)
	}
	return AllQuestionTypes()
}

// ParseTopic resolves a user-supplied topic name. An empty name yields DefaultTopic.
func ParseTopic(name string) (Topic, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultTopic, nil
	}
	t := Topic(strings.ReplaceAll(name, "-", "_"))
	if _, ok := topicIndex[t]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownTopic, name)
	}
	return t, nil
}
