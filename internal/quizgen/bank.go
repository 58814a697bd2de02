package quizgen

import (
	"lingo-byte/internal/domain"
)

// The static bank backs the deterministic fallback path. Every
// (topic, level) cell carries at least four curated items so a default-size
// quiz can always be served without the model.

const beginnerPassage = "Tom lives in a small town near the sea. Every morning he walks to the bakery on the corner and buys fresh bread for his family. On Saturdays he helps his uncle at the fish market, where he learns the names of many fish and talks to the customers. Tom likes his quiet life, but he dreams of visiting a big city one day."

const intermediatePassage = "Remote work has changed the way many companies think about their offices. Some businesses have given up their buildings entirely, while others have moved to smaller spaces that employees visit only a few days a week. Supporters say that working from home saves time and money, and that people concentrate better away from noisy open-plan offices. Critics argue, however, that new employees learn more slowly without colleagues around them, and that creative ideas often come from casual conversations that video calls cannot replace."

const advancedPassage = "The decline of bee populations has prompted a reassessment of how agricultural landscapes are managed. Monoculture farming, once celebrated for its efficiency, deprives pollinators of the varied diet they require and exposes them to concentrated doses of pesticides. Some governments now subsidize wildflower margins along field edges, a measure whose benefits extend beyond bees to birds and soil health. Yet critics contend that such schemes merely soften the image of an intensive system that remains fundamentally hostile to biodiversity, and that only a structural shift in farming practice will reverse the trend."

func q(topic, level, text string, options [4]string, correct, explanation string) domain.Question {
	return domain.Question{
		QuestionText:  text,
		Options:       options[:],
		CorrectAnswer: correct,
		Explanation:   explanation,
		Topic:         topic,
		Difficulty:    level,
	}
}

func reading(level, passage, text string, options [4]string, correct, explanation string) domain.Question {
	item := q("Reading", level, text, options, correct, explanation)
	item.Passage = passage
	return item
}

// bank is keyed by level, then topic.
var bank = map[string]map[string][]domain.Question{
	domain.LevelBeginner: {
		"Grammar": {
			q("Grammar", domain.LevelBeginner, "Which sentence is correct?",
				[4]string{"I am student", "I am a student", "I am the student", "I student"},
				"I am a student",
				"We use 'a' before singular countable nouns when introducing them."),
			q("Grammar", domain.LevelBeginner, "Choose the correct sentence.",
				[4]string{"She don't like coffee", "She doesn't likes coffee", "She doesn't like coffee", "She not like coffee"},
				"She doesn't like coffee",
				"With he/she/it we use 'doesn't' followed by the base verb."),
			q("Grammar", domain.LevelBeginner, "_____ there any milk in the fridge?",
				[4]string{"Is", "Are", "Do", "Does"},
				"Is",
				"'Milk' is uncountable, so we use the singular 'is'."),
			q("Grammar", domain.LevelBeginner, "My brother _____ in London.",
				[4]string{"live", "lives", "living", "is live"},
				"lives",
				"Third person singular verbs take -s in the present simple."),
		},
		"Vocabulary": {
			q("Vocabulary", domain.LevelBeginner, "What is the opposite of 'big'?",
				[4]string{"tall", "small", "long", "wide"},
				"small",
				"'Small' is the direct opposite of 'big'."),
			q("Vocabulary", domain.LevelBeginner, "Which word means a place where you buy food?",
				[4]string{"library", "hospital", "supermarket", "station"},
				"supermarket",
				"A supermarket is a shop that sells food and household goods."),
			q("Vocabulary", domain.LevelBeginner, "You wear _____ on your feet.",
				[4]string{"gloves", "shoes", "hats", "scarves"},
				"shoes",
				"Shoes are worn on the feet; gloves go on hands and hats on heads."),
			q("Vocabulary", domain.LevelBeginner, "A person who teaches students is a _____.",
				[4]string{"doctor", "driver", "teacher", "farmer"},
				"teacher",
				"'Teacher' names the profession of teaching students."),
		},
		"Reading": {
			reading(domain.LevelBeginner, beginnerPassage, "Where does Tom live?",
				[4]string{"In a big city", "In a small town near the sea", "On a farm", "In the mountains"},
				"In a small town near the sea",
				"The first sentence says Tom lives in a small town near the sea."),
			reading(domain.LevelBeginner, beginnerPassage, "What does Tom buy every morning?",
				[4]string{"Fish", "Fresh bread", "Milk", "Vegetables"},
				"Fresh bread",
				"The passage says he buys fresh bread for his family every morning."),
			reading(domain.LevelBeginner, beginnerPassage, "When does Tom help his uncle?",
				[4]string{"Every morning", "On Saturdays", "On Sundays", "Every evening"},
				"On Saturdays",
				"The passage states he helps his uncle at the fish market on Saturdays."),
			reading(domain.LevelBeginner, beginnerPassage, "What does Tom dream of doing?",
				[4]string{"Buying a boat", "Opening a bakery", "Visiting a big city", "Moving to the mountains"},
				"Visiting a big city",
				"The last sentence says he dreams of visiting a big city one day."),
		},
		"Tenses": {
			q("Tenses", domain.LevelBeginner, "What is the past tense of 'go'?",
				[4]string{"goed", "went", "gone", "goes"},
				"went",
				"'Went' is the past tense of the irregular verb 'go'."),
			q("Tenses", domain.LevelBeginner, "Right now, she _____ dinner.",
				[4]string{"cooks", "is cooking", "cooked", "cook"},
				"is cooking",
				"'Right now' signals the present continuous: is/are + verb-ing."),
			q("Tenses", domain.LevelBeginner, "Yesterday we _____ football in the park.",
				[4]string{"play", "plays", "played", "playing"},
				"played",
				"'Yesterday' requires the past simple, formed with -ed for regular verbs."),
			q("Tenses", domain.LevelBeginner, "Tomorrow I _____ my grandmother.",
				[4]string{"visit", "visited", "will visit", "visiting"},
				"will visit",
				"'Tomorrow' points to the future, expressed with 'will' + base verb."),
		},
		"Pronunciation": {
			q("Pronunciation", domain.LevelBeginner, "Which word has a silent letter?",
				[4]string{"cat", "know", "sun", "red"},
				"know",
				"The 'k' in 'know' is silent; the word starts with the /n/ sound."),
			q("Pronunciation", domain.LevelBeginner, "Which word rhymes with 'cake'?",
				[4]string{"back", "lake", "luck", "kick"},
				"lake",
				"'Cake' and 'lake' share the same /eɪk/ ending sound."),
			q("Pronunciation", domain.LevelBeginner, "Which word has the same first sound as 'ship'?",
				[4]string{"chip", "sheep", "sip", "zip"},
				"sheep",
				"'Ship' and 'sheep' both start with the /ʃ/ sound."),
			q("Pronunciation", domain.LevelBeginner, "How many syllables does 'banana' have?",
				[4]string{"one", "two", "three", "four"},
				"three",
				"'Ba-na-na' breaks into three syllables."),
		},
	},
	domain.LevelIntermediate: {
		"Grammar": {
			q("Grammar", domain.LevelIntermediate, "If I _____ you, I would study harder.",
				[4]string{"am", "was", "were", "be"},
				"were",
				"In second conditional sentences, we use 'were' for all persons after 'if'."),
			q("Grammar", domain.LevelIntermediate, "The report _____ by the manager yesterday.",
				[4]string{"wrote", "was written", "is written", "has written"},
				"was written",
				"The passive voice in the past uses was/were + past participle."),
			q("Grammar", domain.LevelIntermediate, "She asked me _____ I could help her.",
				[4]string{"that", "what", "whether", "which"},
				"whether",
				"'Whether' (or 'if') introduces an indirect yes/no question."),
			q("Grammar", domain.LevelIntermediate, "I'm not used to _____ up so early.",
				[4]string{"get", "getting", "got", "have got"},
				"getting",
				"'Be used to' is followed by a gerund, not the base verb."),
		},
		"Vocabulary": {
			q("Vocabulary", domain.LevelIntermediate, "Which word is a synonym of 'essential'?",
				[4]string{"optional", "crucial", "ordinary", "temporary"},
				"crucial",
				"'Crucial' and 'essential' both mean extremely important."),
			q("Vocabulary", domain.LevelIntermediate, "The meeting was called off. What does 'called off' mean?",
				[4]string{"postponed", "cancelled", "extended", "interrupted"},
				"cancelled",
				"The phrasal verb 'call off' means to cancel."),
			q("Vocabulary", domain.LevelIntermediate, "We should _____ a decision before Friday.",
				[4]string{"do", "take", "make", "have"},
				"make",
				"'Make a decision' is the standard collocation in English."),
			q("Vocabulary", domain.LevelIntermediate, "He felt _____ after losing his keys for the third time.",
				[4]string{"frustrated", "frustrating", "frustration", "frustrate"},
				"frustrated",
				"The -ed adjective describes how a person feels; -ing describes the cause."),
		},
		"Reading": {
			reading(domain.LevelIntermediate, intermediatePassage, "What is the main topic of the passage?",
				[4]string{"The cost of office buildings", "How remote work is changing offices", "The history of video calls", "Why employees dislike commuting"},
				"How remote work is changing offices",
				"The passage discusses how remote work has altered companies' use of offices."),
			reading(domain.LevelIntermediate, intermediatePassage, "According to supporters, what is one benefit of working from home?",
				[4]string{"Faster training for new employees", "More casual conversations", "Better concentration", "Bigger offices"},
				"Better concentration",
				"Supporters say people concentrate better away from noisy open-plan offices."),
			reading(domain.LevelIntermediate, intermediatePassage, "What do critics say about new employees?",
				[4]string{"They prefer working from home", "They learn more slowly without colleagues around", "They save time and money", "They dislike video calls"},
				"They learn more slowly without colleagues around",
				"Critics argue new employees learn more slowly without colleagues nearby."),
			reading(domain.LevelIntermediate, intermediatePassage, "What can be inferred about creative ideas?",
				[4]string{"They often arise from informal in-person talk", "They require large offices", "They are scheduled in advance", "They only happen on video calls"},
				"They often arise from informal in-person talk",
				"The passage says creative ideas often come from casual conversations that video calls cannot replace."),
		},
		"Tenses": {
			q("Tenses", domain.LevelIntermediate, "By the time we arrived, the film _____.",
				[4]string{"started", "has started", "had started", "was starting"},
				"had started",
				"The past perfect marks an action completed before another past action."),
			q("Tenses", domain.LevelIntermediate, "I _____ here since 2019.",
				[4]string{"work", "am working", "have worked", "worked"},
				"have worked",
				"'Since' + a starting point takes the present perfect."),
			q("Tenses", domain.LevelIntermediate, "This time tomorrow, we _____ over the Atlantic.",
				[4]string{"fly", "will be flying", "will fly", "are flying"},
				"will be flying",
				"The future continuous describes an action in progress at a future moment."),
			q("Tenses", domain.LevelIntermediate, "While she _____ dinner, the phone rang.",
				[4]string{"cooked", "was cooking", "had cooked", "cooks"},
				"was cooking",
				"The past continuous sets the background action interrupted by the past simple."),
		},
		"Pronunciation": {
			q("Pronunciation", domain.LevelIntermediate, "In which word is the stress on the second syllable?",
				[4]string{"PHOtograph", "phoTOgraphy", "TElephone", "INternet"},
				"phoTOgraphy",
				"'Photography' is stressed on the second syllable: pho-TO-gra-phy."),
			q("Pronunciation", domain.LevelIntermediate, "Which word contains the /ð/ sound, as in 'this'?",
				[4]string{"think", "brother", "thank", "tooth"},
				"brother",
				"'Brother' has the voiced /ð/; 'think', 'thank' and 'tooth' use voiceless /θ/."),
			q("Pronunciation", domain.LevelIntermediate, "Which pair are homophones?",
				[4]string{"weather / whether", "live / leave", "ship / sheep", "work / walk"},
				"weather / whether",
				"'Weather' and 'whether' are pronounced identically."),
			q("Pronunciation", domain.LevelIntermediate, "The '-ed' in 'wanted' is pronounced as:",
				[4]string{"/t/", "/d/", "/ɪd/", "it is silent"},
				"/ɪd/",
				"After /t/ or /d/ sounds, the -ed ending is pronounced as a separate syllable /ɪd/."),
		},
	},
	domain.LevelAdvanced: {
		"Grammar": {
			q("Grammar", domain.LevelAdvanced, "_____ had the minister finished speaking than the protests erupted.",
				[4]string{"Hardly", "No sooner", "Scarcely", "Barely"},
				"No sooner",
				"'No sooner ... than' is the fixed inverted structure; the others pair with 'when'."),
			q("Grammar", domain.LevelAdvanced, "Were it not for his intervention, the project _____.",
				[4]string{"would fail", "would have failed", "will fail", "had failed"},
				"would have failed",
				"Inverted third conditional: 'were it not for' + would have + past participle."),
			q("Grammar", domain.LevelAdvanced, "The committee insisted that the report _____ before Friday.",
				[4]string{"is submitted", "was submitted", "be submitted", "will be submitted"},
				"be submitted",
				"Verbs like 'insist' and 'demand' take the subjunctive: base form 'be'."),
			q("Grammar", domain.LevelAdvanced, "_____ the complexity of the task, the deadline seems unrealistic.",
				[4]string{"Given", "Giving", "To give", "Having given"},
				"Given",
				"'Given' functions here as a preposition meaning 'taking into account'."),
		},
		"Vocabulary": {
			q("Vocabulary", domain.LevelAdvanced, "The new policy has been _____ by the committee.",
				[4]string{"ratified", "justified", "clarified", "nullified"},
				"ratified",
				"'Ratified' means officially approved or confirmed, which fits the context."),
			q("Vocabulary", domain.LevelAdvanced, "His argument was so _____ that even his opponents conceded the point.",
				[4]string{"specious", "cogent", "verbose", "tenuous"},
				"cogent",
				"'Cogent' describes reasoning that is clear, logical and convincing."),
			q("Vocabulary", domain.LevelAdvanced, "To 'throw in the towel' means to:",
				[4]string{"celebrate a victory", "admit defeat", "start a fight", "take a break"},
				"admit defeat",
				"The idiom comes from boxing, where a trainer throws a towel into the ring to stop the fight."),
			q("Vocabulary", domain.LevelAdvanced, "The scandal _____ doubts about the firm's governance.",
				[4]string{"dispelled", "assuaged", "precipitated", "alleviated"},
				"precipitated",
				"'Precipitated' means brought about suddenly; the other verbs mean reducing doubts."),
		},
		"Reading": {
			reading(domain.LevelAdvanced, advancedPassage, "What criticism of monoculture farming does the passage make?",
				[4]string{"It is too expensive for farmers", "It deprives pollinators of a varied diet", "It produces low-quality crops", "It requires too much labour"},
				"It deprives pollinators of a varied diet",
				"The passage says monoculture deprives pollinators of the varied diet they require."),
			reading(domain.LevelAdvanced, advancedPassage, "What do some governments subsidize?",
				[4]string{"Pesticide research", "Wildflower margins along field edges", "Larger monoculture fields", "Beekeeping equipment"},
				"Wildflower margins along field edges",
				"The passage states that governments now subsidize wildflower margins along field edges."),
			reading(domain.LevelAdvanced, advancedPassage, "According to critics, wildflower schemes:",
				[4]string{"fully reverse the decline of bees", "harm birds and soil health", "merely soften the image of intensive farming", "are too expensive to maintain"},
				"merely soften the image of intensive farming",
				"Critics contend the schemes soften the image of a system that remains hostile to biodiversity."),
			reading(domain.LevelAdvanced, advancedPassage, "The author's presentation of the debate is best described as:",
				[4]string{"openly dismissive of critics", "balanced between both positions", "enthusiastically pro-subsidy", "indifferent to the outcome"},
				"balanced between both positions",
				"The passage reports both the benefits of subsidies and the critics' structural objection without taking sides."),
		},
		"Tenses": {
			q("Tenses", domain.LevelAdvanced, "By next June, she _____ at the firm for twenty years.",
				[4]string{"will work", "will have been working", "is working", "will be working"},
				"will have been working",
				"The future perfect continuous measures duration up to a future point."),
			q("Tenses", domain.LevelAdvanced, "He _____ the report by now; he started it a week ago.",
				[4]string{"should have finished", "must finish", "shall finish", "would finish"},
				"should have finished",
				"'Should have' + past participle expresses an expectation about a completed action."),
			q("Tenses", domain.LevelAdvanced, "I'd rather you _____ anyone about the merger yet.",
				[4]string{"don't tell", "didn't tell", "hadn't told", "won't tell"},
				"didn't tell",
				"'Would rather' + subject takes a past form with present or future meaning."),
			q("Tenses", domain.LevelAdvanced, "The suspect denied _____ the building that evening.",
				[4]string{"to enter", "entering", "to have entered", "enter"},
				"entering",
				"'Deny' is followed by a gerund, and 'entering' covers the past reference here."),
		},
		"Pronunciation": {
			q("Pronunciation", domain.LevelAdvanced, "In connected speech, 'want to' is commonly reduced to:",
				[4]string{"wanna", "wonta", "wantoo", "winto"},
				"wanna",
				"In rapid informal speech, 'want to' reduces to the weak form 'wanna'."),
			q("Pronunciation", domain.LevelAdvanced, "Which word does NOT have stress on the first syllable?",
				[4]string{"COMfortable", "VEgetable", "hoTEL", "INteresting"},
				"hoTEL",
				"'Hotel' is stressed on the second syllable, unlike the other three."),
			q("Pronunciation", domain.LevelAdvanced, "The noun and verb forms of 'record' differ in:",
				[4]string{"vowel length only", "stress placement", "the final consonant", "nothing; they are identical"},
				"stress placement",
				"REcord (noun) stresses the first syllable; reCORD (verb) stresses the second."),
			q("Pronunciation", domain.LevelAdvanced, "Which word contains an intrusive /r/ in many British accents?",
				[4]string{"law and order", "red carpet", "green apple", "blue sky"},
				"law and order",
				"Many speakers insert /r/ between 'law' and 'and', producing 'law-r-and order'."),
		},
	},
}
