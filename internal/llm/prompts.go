package llm

import "fmt"

// Input caps keep prompts inside model context limits.
const (
	maxATSResumeChars   = 5000
	maxDetectInputChars = 3000
)

// ChatSystemInstruction is the assistant persona for the resume chat.
const ChatSystemInstruction = "You are SH Dileep, a friendly and expert AI Resume Assistant for the ResumeAI platform. Your goal is to help users (mostly freshers) build high-quality, ATS-compliant resumes. You are encouraging, professional, and concise. You can suggest improvements, explain resume sections, and provide career advice. Always answer in a helpful, conversational tone."

// SummaryPrompt asks for a short professional summary for a fresher.
func SummaryPrompt(role, keywords string) string {
	return fmt.Sprintf(`Write a professional, ATS-friendly resume summary (approx 50-70 words) for a fresher applying for the role of %q.
    Focus on these skills/keywords: %s.
    Tone: Professional, ambitious, and precise.`, role, keywords)
}

// PolishPrompt asks for a rewrite of one description as a resume bullet point.
func PolishPrompt(text string) string {
	return fmt.Sprintf(`Rewrite the following sentence to be a professional, impactful resume bullet point. Use strong action verbs and quantitative metrics if possible. Keep it concise.
    Original: %q`, text)
}

// EnhancePrompt asks for resume content rewritten against a job description.
func EnhancePrompt(currentText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert resume writer. Rewrite the following resume content to better align with the provided Job Description.

    Job Description:
    %s

    Current Content:
    %s

    Rules:
    1. Improve grammar and clarity.
    2. Incorporate relevant keywords from the JD naturally.
    3. Use active voice and action verbs.
    4. Return ONLY the enhanced text, no conversational filler.
    `, jobDescription, currentText)
}

// ATSPrompt asks for an ATS compliance analysis of resume text.
func ATSPrompt(resumeText string) string {
	return fmt.Sprintf(`Analyze the following resume text for ATS (Applicant Tracking System) compliance.
    Resume Text: %q

    Return the response in strictly valid JSON format matching this schema:
    {
      "score": number (0-100),
      "missingKeywords": string[] (list of 3-5 important missing generic tech keywords),
      "suggestions": string[] (3 actionable improvements),
      "sectionAnalysis": [
        { "section": "Summary", "status": "Good" | "Needs Improvement", "feedback": "string" },
        { "section": "Experience", "status": "Good" | "Needs Improvement", "feedback": "string" }
      ]
    }`, truncate(resumeText, maxATSResumeChars))
}

// ATSSchema is the structured-output schema for ATSPrompt.
func ATSSchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"score":           {Type: TypeNumber},
			"missingKeywords": {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"suggestions":     {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"sectionAnalysis": {
				Type: TypeArray,
				Items: &Schema{
					Type: TypeObject,
					Properties: map[string]*Schema{
						"section":  {Type: TypeString},
						"status":   {Type: TypeString},
						"feedback": {Type: TypeString},
					},
				},
			},
		},
	}
}

// InterviewPrompt asks for company and interview preparation insights.
func InterviewPrompt(company, role, location, jobDesc string) string {
	return fmt.Sprintf(`Provide detailed interview insights for the company %q for the role of %q in location %q.
    Job Description context: %q.

    Please provide:
    1. Estimated Employee Count & Global Branches (approximate market data).
    2. Estimated Starting Salary Package & Hike Trends for this role.
    3. Growth Prospects & Review Summary (culture).
    4. 5-7 likely Interview Questions (mix of technical and HR based on the JD/Role).
    5. 3 Preparation Tips.

    Return STRICT JSON matching this schema:
    {
      "companyInfo": {
        "employeeCount": "string",
        "branches": "string",
        "salaryPackage": "string",
        "hikeTrends": "string",
        "growthProspects": "string"
      },
      "questions": ["string", "string"],
      "tips": ["string"]
    }`, company, role, location, jobDesc)
}

// InterviewSchema is the structured-output schema for InterviewPrompt.
func InterviewSchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"companyInfo": {
				Type: TypeObject,
				Properties: map[string]*Schema{
					"employeeCount":   {Type: TypeString},
					"branches":        {Type: TypeString},
					"salaryPackage":   {Type: TypeString},
					"hikeTrends":      {Type: TypeString},
					"growthProspects": {Type: TypeString},
				},
			},
			"questions": {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"tips":      {Type: TypeArray, Items: &Schema{Type: TypeString}},
		},
	}
}

// DetectPrompt asks for an AI-generation likelihood estimate for text.
func DetectPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text for signs of AI generation (repetitive structure, lack of burstiness, generic phrasing, perfect grammar but low nuance).
    Text: %q

    Return a strict JSON:
    {
      "aiPercentage": number (0-100 estimate),
      "reasoning": "string (brief explanation)",
      "verdict": "string ('Human-Written' | 'Likely AI-Generated' | 'Mixed/Edited')"
    }`, truncate(text, maxDetectInputChars))
}

// DetectSchema is the structured-output schema for DetectPrompt.
func DetectSchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"aiPercentage": {Type: TypeNumber},
			"reasoning":    {Type: TypeString},
			"verdict":      {Type: TypeString},
		},
	}
}

// HumanizePrompt asks for a rewrite that reads as human-authored.
func HumanizePrompt(text string) string {
	return fmt.Sprintf(`Rewrite the following text to make it sound more human, authentic, and natural.
    Increase sentence variety (burstiness), use more conversational but professional transitions, and remove robotic phrasing.
    It should NOT look like it was written by an AI.

    Original Text:
    %s`, text)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
