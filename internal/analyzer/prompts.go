package analyzer

const summaryPrompt = `You are an expert meeting summarizer. Given the following transcript of a meeting (which may contain English, Mandarin, and Cantonese), create a concise, neutral summary covering the key points, discussions, and decisions. Structure the summary logically.

Transcript:
%s

Concise Summary:`

const actionPrompt = `You are an expert in identifying action items from meeting transcripts. Analyze the following transcript (which may contain English, Mandarin, and Cantonese) and extract all specific action items. List each action item clearly, mentioning the task and, if possible, the assigned person and deadline. If no action items are found, state that clearly.

Format each action item starting with "ACTION: ".

Transcript:
%s

Action Items:`
