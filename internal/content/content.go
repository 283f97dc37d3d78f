// Package content holds the static text of the informational pages.
package content

const (
	AppName = "SafeHaven"
	Tagline = "Caring support when you need it"
	Footer  = "SafeHaven © 2025"
)

// Disclaimer is shown above every page.
const Disclaimer = "This tool provides general information and resource suggestions related to miscarriage. " +
	"It is NOT a substitute for professional medical advice, diagnosis, or treatment. " +
	"Always consult a qualified healthcare provider for any medical concerns or questions. " +
	"This AI cannot provide personalized medical or psychological advice."

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faqs = []FAQ{
	{
		Question: "What is a miscarriage?",
		Answer:   "A miscarriage is the spontaneous loss of a pregnancy before the 20th week. It's a common occurrence, affecting about 10-20% of known pregnancies.",
	},
	{
		Question: "What causes miscarriage?",
		Answer:   "Most miscarriages (around 80%) are caused by chromosomal abnormalities in the embryo, meaning the baby isn't developing as it should. Other causes can include hormonal imbalances, uterine abnormalities, infections, or certain chronic health conditions in the mother. Lifestyle factors generally do not cause miscarriage.",
	},
	{
		Question: "Is it my fault if I have a miscarriage?",
		Answer:   "Absolutely not. Miscarriages are rarely caused by anything a person did or didn't do. It's a common misconception that stress, exercise, or minor falls can cause miscarriage, but this is generally untrue. The vast majority are due to factors beyond anyone's control.",
	},
	{
		Question: "What are the common symptoms of miscarriage?",
		Answer:   "Common symptoms include vaginal bleeding (which can range from light spotting to heavy bleeding), abdominal cramping or pain, and the passing of tissue or fluid from the vagina. However, some people may experience a \"missed miscarriage\" with no outward symptoms.",
	},
	{
		Question: "How long does the physical recovery take after a miscarriage?",
		Answer:   "Physical recovery varies for each individual, but it typically takes a few days to a few weeks. Bleeding and cramping may last for a week or two. It's important to follow your healthcare provider's advice for post-miscarriage care.",
	},
	{
		Question: "How long does the emotional recovery take?",
		Answer:   "Emotional recovery is highly individual and can take much longer than physical recovery. Grief is a natural response, and it's normal to experience a range of emotions, including sadness, anger, guilt, and anxiety. There's no set timeline for healing, and seeking emotional support can be very helpful.",
	},
	{
		Question: "When can I try to conceive again after a miscarriage?",
		Answer:   "This is a question best answered by your healthcare provider, as it depends on individual circumstances and the type of miscarriage. Medically, many providers suggest waiting for at least one normal menstrual cycle before trying again, but emotional readiness is also a key factor.",
	},
}

// FAQs returns the question and answer pairs in display order.
func FAQs() []FAQ {
	out := make([]FAQ, len(faqs))
	copy(out, faqs)
	return out
}

type AboutSection struct {
	Heading string
	Intro   string
	Points  []string
}

type AboutPage struct {
	Title    string
	Intro    string
	Sections []AboutSection
	Closing  string
}

var about = AboutPage{
	Title: "About This Project: Empowering Through Knowledge and Support",
	Intro: "This Miscarriage Support System is a project developed with the aim of providing accessible, compassionate, and accurate general information and support resources related to miscarriage. " +
		"It is built as part of a larger initiative focusing on SDG 5: Gender Equality, specifically by empowering women through the responsible application of AI in software engineering.",
	Sections: []AboutSection{
		{
			Heading: "Our Mission",
			Intro:   "In many societies, miscarriage remains a topic shrouded in silence, stigma, and misinformation. This can lead to profound emotional distress, isolation and a lack of proper support for individuals and families experiencing this loss. Our mission is to:",
			Points: []string{
				"Demystify Miscarriage: Provide clear, factual information to combat myths and reduce self-blame.",
				"Facilitate Communication: Offer guidance on how to talk about miscarriage, both for those experiencing it and their support networks.",
				"Promote Emotional Well-being: Offer a safe, private space for emotional check-ins and journaling, acknowledging the validity of grief.",
				"Connect to Resources: Guide users towards professional medical, psychological, and peer support organizations.",
			},
		},
		{
			Heading: "How AI is Used",
			Intro:   "This application uses Google's Gemini models to act as an empathetic information assistant. The AI is carefully prompted to:",
			Points: []string{
				"Retrieve and synthesize information from a curated knowledge base.",
				"Respond with compassion and empathy.",
				"Strictly avoid providing medical diagnoses, personalized advice, or therapeutic counseling.",
				"Prioritize user safety and well-being by always recommending professional help for medical or psychological concerns.",
			},
		},
	},
	Closing: "By providing reliable information and fostering a supportive environment, we aim to empower individuals to navigate their journey with greater understanding and access to the help they need.",
}

// About returns the text of the about page.
func About() AboutPage {
	return about
}
