package fallback

import "strings"

type Category string

const (
	CategoryBehavioral  Category = "behavioral"
	CategoryTechnical   Category = "technical"
	CategorySituational Category = "situational"
	CategoryMixed       Category = "mixed"
)

// Categories lists the bank categories in a stable order.
var Categories = []Category{CategoryBehavioral, CategoryTechnical, CategorySituational, CategoryMixed}

// ParseCategory normalises s; anything unknown resolves to CategoryMixed.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := questionBank[c]; ok {
		return c
	}
	return CategoryMixed
}

// Pool returns a copy of the questions for c, falling back to the mixed pool.
func Pool(c Category) []string {
	pool, ok := questionBank[c]
	if !ok {
		pool = questionBank[CategoryMixed]
	}
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}

var questionBank = map[Category][]string{
	CategoryBehavioral: {
		"Tell me about yourself and why you are interested in this role.",
		"Describe a time you had a conflict with a teammate and how you resolved it.",
		"Tell me about a project you are most proud of.",
		"Describe a situation where you failed. What did you learn from it?",
		"Give an example of a time you showed leadership without formal authority.",
		"Tell me about a time you had to meet a very tight deadline.",
		"Describe a time you received critical feedback. How did you respond?",
		"Tell me about a time you had to learn something new quickly.",
		"Give an example of how you handled multiple competing priorities.",
		"Describe a time you went above and beyond what was expected.",
		"Tell me about a time you disagreed with your manager.",
		"Describe how your experience has prepared you for this position.",
		"Tell me about a time you had to persuade others to adopt your idea.",
		"Describe a mistake you made at work and how you fixed it.",
		"Tell me about a time you helped a struggling colleague.",
	},
	CategoryTechnical: {
		"Walk me through the core technical skills required for this role.",
		"Explain a complex technical concept from this field to a non-expert.",
		"Describe the most challenging technical problem you have solved.",
		"How do you make sure the quality of your work stays high?",
		"What tools and technologies do you rely on most, and why?",
		"How do you stay current with developments in this field?",
		"Describe how you would troubleshoot a problem you have never seen before.",
		"Walk me through how you approach planning a new piece of work.",
		"How do you balance speed and accuracy in your work?",
		"Describe a time you improved an existing process or system.",
		"What metrics do you use to measure success in your work?",
		"How do you document your work so others can build on it?",
		"Describe a technical decision you made that you later changed. Why?",
		"How would you explain your experience with industry standards and regulations?",
		"What is a common mistake people make in this field, and how do you avoid it?",
	},
	CategorySituational: {
		"What would you do if you were assigned a task with unclear requirements?",
		"How would you handle a customer or stakeholder who is unhappy with your work?",
		"What would you do if you noticed a colleague making a serious mistake?",
		"How would you prioritise if three urgent tasks arrived at the same time?",
		"What would you do if you disagreed with a decision made by leadership?",
		"How would you approach your first 90 days in this role?",
		"What would you do if a project you led was falling behind schedule?",
		"How would you handle being asked to do something outside your expertise?",
		"What would you do if a teammate consistently missed their commitments?",
		"How would you respond if you received conflicting instructions from two managers?",
		"What would you do if you realised you could not meet a promised deadline?",
		"How would you onboard yourself into an unfamiliar team quickly?",
		"What would you do if you found a flaw in work that had already shipped?",
		"How would you handle a high-pressure situation with limited information?",
		"What would you do if your workload became unsustainable?",
	},
	CategoryMixed: {
		"Tell me about yourself and what draws you to this role.",
		"What are your greatest strengths and how do they apply here?",
		"Describe a challenging problem you solved recently.",
		"How would you handle a disagreement with a senior colleague?",
		"Where do you see yourself in five years?",
		"Tell me about a time you worked effectively under pressure.",
		"What do you know about the responsibilities in this field?",
		"Describe a time you had to adapt to a significant change.",
		"How do you approach learning a new skill or tool?",
		"What would you do in your first month if you got this job?",
		"Tell me about a time you made a data-driven decision.",
		"How do you handle constructive criticism?",
		"Describe your ideal working environment.",
		"What accomplishment from your experience best represents your work?",
		"Why should we choose you over other candidates?",
	},
}
