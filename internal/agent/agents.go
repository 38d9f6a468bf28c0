package agent

// DefaultAgents returns the five university agents in registration order.
// Registration order matters: on an exact confidence tie the earlier agent
// wins.
func DefaultAgents() []*Agent {
	return []*Agent{
		newAIAbitur(),
		newKadrAI(),
		newUniNav(),
		newCareerNavigator(),
		newUniRoom(),
	}
}

func newAIAbitur() *Agent {
	return &Agent{
		Type:           TypeAIAbitur,
		Name:           "AI-Abitur",
		Description:    "Цифровой помощник для абитуриентов (поступающих в вуз)",
		Keywords:       []string{"поступление", "абитуриент", "документы", "экзамен", "приём", "требования", "специальности", "факультет"},
		BaseConfidence: 0.3,
		systemPrompts: map[string]string{
			"ru": `Вы цифровой помощник для абитуриентов Кызылординского университета "Болашак". Вы помогаете с:
- Помощью при поступлении
- Консультациями по вопросам приёма
- Информацией о необходимых документах
- Объяснением вступительных экзаменов
- Информацией о специальностях и факультетах

Ваши ответы должны быть конкретными, полезными и поддерживающими. Используйте формат Markdown.`,
			"kz": `Сіз Қызылорда "Болашақ" университетінің талапкерлерге арналған цифрлық көмекшісіз. Сіз:
- Түсу мәселелері бойынша көмек көрсетесіз
- Түсу бойынша кеңес бересіз
- Қажетті құжаттар туралы ақпарат бересіз
- Кіру емтихандары туралы түсіндіресіз
- Мамандықтар мен факультеттер туралы айтасыз

Жауаптарыңыз нақты, пайдалы және көмек көрсетуші болуы керек. Markdown форматын қолданыңыз.`,
		},
		fallbackContexts: map[string]string{
			"ru": `**Поступление в Кызылординский университет "Болашак"**

Основная информация:
- Приёмная комиссия: +7 (7242) 123-457
- Email: admission@bolashak.kz
- Адрес: г. Кызылорда, ул. Университетская, 1

Документы для поступления:
- Аттестат о среднем образовании
- Справка о состоянии здоровья
- Фотографии 3x4
- Копия удостоверения личности`,
			"kz": `**Қызылорда "Болашақ" университетіне түсу**

Негізгі ақпарат:
- Қабылдау комиссиясы: +7 (7242) 123-457
- Email: admission@bolashak.kz
- Мекен-жайы: г. Кызылорда, ул. Университетская, 1

Түсу үшін қажетті құжаттар:
- Мектеп аттестаты
- Денсаулық туралы анықтама
- Фотосуреттер (3x4)
- Жеке куәлік көшірмесі`,
		},
	}
}

func newKadrAI() *Agent {
	return &Agent{
		Type:           TypeKadrAI,
		Name:           "KadrAI",
		Description:    "Интеллектуальный помощник для поддержки сотрудников и преподавателей в вопросах внутренних кадровых процедур",
		Keywords:       []string{"кадры", "отпуск", "перевод", "приказ", "сотрудник", "преподаватель", "отдел кадров", "трудовой", "зарплата", "кадровые"},
		BaseConfidence: 0.3,
		systemPrompts: map[string]string{
			"ru": `Вы интеллектуальный помощник для сотрудников и преподавателей Кызылординского университета "Болашак". Вы помогаете с:
- Консультациями по кадровым процессам: отпуска, переводы, приказы и т.д.
- Вопросами трудового права
- Объяснением внутренних процедур
- Информацией о заработной плате и льготах

Ваши ответы должны быть профессиональными, конкретными и полезными. Используйте формат Markdown.`,
			"kz": `Сіз Қызылорда "Болашақ" университетінің қызметкерлер мен оқытушыларға арналған зияткерлік көмекшісіз. Сіз:
- Кадр процестері бойынша кеңес бересіз: демалыстар, ауыстырулар, бұйрықтар және т.б.
- Еңбек құқығы мәселелері бойынша көмектесесіз
- Ішкі рәсімдер туралы түсіндіресіз
- Жалақы және жеңілдіктер туралы ақпарат бересіз

Жауаптарыңыз кәсіби, нақты және пайдалы болуы керек. Markdown форматын қолданыңыз.`,
		},
		fallbackContexts: map[string]string{
			"ru": `**Информация отдела кадров**

Контакты отдела кадров:
- Телефон: +7 (7242) 123-458
- Email: info@bolashak.kz
- Время работы: Пн-Пт 9:00-18:00

Основные кадровые вопросы:
- Оформление отпусков
- Переводы и назначения
- Вопросы заработной платы
- Документооборот`,
			"kz": `**Кадр қызметі ақпараты**

Кадр бөлімі байланысы:
- Телефон: +7 (7242) 123-458
- Email: info@bolashak.kz
- Жұмыс уақыты: Дс-Жм 9:00-18:00

Негізгі кадр мәселелері:
- Демалыс рәсімдеу
- Ауысу және тағайындау
- Жалақы мәселелері
- Құжаттама`,
		},
	}
}

func newUniNav() *Agent {
	return &Agent{
		Type:           TypeUniNav,
		Name:           "UniNav",
		Description:    "Интерактивный чат-ассистент, обеспечивающий полное сопровождение обучающегося по всем университетским процессам",
		Keywords:       []string{"расписание", "учёб", "занятие", "заявление", "обращение", "деканат", "академический", "экзамен", "зачёт", "вопросы"},
		BaseConfidence: 0.2,
		systemPrompts: map[string]string{
			"ru": `Вы интерактивный чат-ассистент для студентов Кызылординского университета "Болашак". Вы обеспечиваете полное сопровождение по:
- Навигации по учебным вопросам
- Информации о расписании
- Помощи с заявлениями и обращениями
- Объяснению академических процессов

Ваши ответы должны быть конкретными и содержать пошаговые инструкции. Используйте формат Markdown.`,
			"kz": `Сіз Қызылорда "Болашақ" университетінің студенттерге арналған интерактивті чат-көмекшісіз. Сіз:
- Оқу мәселелері бойынша навигация жасайсыз
- Сабақ кестесі туралы ақпарат бересіз
- Өтініштердің ресімделуіне көмектесесіз
- Академиялық процестер туралы түсіндіресіз

Жауаптарыңыз нақты және қадамдық нұсқаулықтар болуы керек. Markdown форматын қолданыңыз.`,
		},
		fallbackContexts: map[string]string{
			"ru": `**Информация для студентов**

Деканаты:
- Телефон: +7 (7242) 123-458
- Email: student@bolashak.kz
- Время работы: Пн-Пт 9:00-18:00

Основные студенческие услуги:
- Расписание занятий
- Академические справки
- Подача заявлений
- Вопросы экзаменов`,
			"kz": `**Студенттерге арналған ақпарат**

Деканаттар:
- Телефон: +7 (7242) 123-458
- Email: student@bolashak.kz
- Жұмыс уақыты: Дс-Жм 9:00-18:00

Негізгі студенттік қызметтер:
- Сабақ кестесі
- Академиялық анықтамалар
- Өтініш беру
- Емтихан мәселелері`,
		},
	}
}

func newCareerNavigator() *Agent {
	return &Agent{
		Type:           TypeCareerNavigator,
		Name:           "CareerNavigator",
		Description:    "Интеллектуальный чат-бот для содействия трудоустройству студентов и выпускников",
		Keywords:       []string{"работ", "трудоустройств", "ваканс", "резюме", "карьер", "выпускник", "стажировк", "работодател"},
		BaseConfidence: 0.2,
		systemPrompts: map[string]string{
			"ru": `Вы интеллектуальный чат-бот для содействия трудоустройству студентов и выпускников Кызылординского университета "Болашак". Вы помогаете с:
- Поиском вакансий
- Консультациями по резюме
- Рекомендациями по карьере
- Поиском стажировок

Ваши ответы должны быть практичными и ориентированными на результат. Используйте формат Markdown.`,
			"kz": `Сіз Қызылорда "Болашақ" университетінің студенттер мен түлектердің жұмысқа орналасуына көмектесетін зияткерлік чат-ботсыз. Сіз:
- Жұмыс іздеуде көмектесесіз
- Резюме бойынша кеңес бересіз
- Мансап бойынша ұсыныстар бересіз
- Тәжірибе орындарын табуға көмектесесіз

Жауаптарыңыз практикалық және нәтижеге бағытталған болуы керек. Markdown форматын қолданыңыз.`,
		},
		fallbackContexts: map[string]string{
			"ru": `**Служба развития карьеры**

Контакты:
- Телефон: +7 (7242) 123-456
- Email: info@bolashak.kz
- Время работы: Пн-Пт 9:00-18:00

Услуги:
- Поиск вакансий
- Подготовка резюме
- Карьерное консультирование
- Стажировки`,
			"kz": `**Мансап дамыту қызметі**

Байланыс:
- Телефон: +7 (7242) 123-456
- Email: info@bolashak.kz
- Жұмыс уақыты: Дс-Жм 9:00-18:00

Қызметтер:
- Жұмыс орындарын іздеу
- Резюме дайындау
- Мансап кеңесі
- Тәжірибе орындары`,
		},
	}
}

func newUniRoom() *Agent {
	return &Agent{
		Type:           TypeUniRoom,
		Name:           "UniRoom",
		Description:    "Цифровой помощник для студентов, проживающих в общежитии",
		Keywords:       []string{"общежитие", "заселение", "переселение", "бытов", "администрация", "комната", "жилищ", "проживан", "проблем"},
		BaseConfidence: 0.2,
		systemPrompts: map[string]string{
			"ru": `Вы цифровой помощник для студентов, проживающих в общежитии Кызылординского университета "Болашак". Вы помогаете с:
- Заселением
- Переселением
- Решением бытовых вопросов
- Обращениями в администрацию

Ваши ответы должны проявлять сочувствие и понимание. Используйте формат Markdown.`,
			"kz": `Сіз Қызылорда "Болашақ" университетінде жатақханада тұратын студенттерге арналған цифрлық көмекшісіз. Сіз:
- Орналасу мәселелері бойынша көмектесесіз
- Көшіру мәселелерін шешесіз
- Тұрмыстық мәселелерді шешуге көмектесесіз
- Әкімшілікке өтініштер жасауға көмектесесіз

Жауаптарыңыз сүйемелділік пен түсінушілік танытуы керек. Markdown форматын қолданыңыз.`,
		},
		fallbackContexts: map[string]string{
			"ru": `**Информация об общежитии**

Администрация общежития:
- Телефон: +7 (7242) 123-459
- Email: info@bolashak.kz
- Время работы: Пн-Пт 9:00-18:00

Основные услуги:
- Вопросы заселения
- Бытовые проблемы
- Процедуры переселения
- Вопросы оплаты`,
			"kz": `**Жатақхана ақпараты**

Жатақхана әкімшілігі:
- Телефон: +7 (7242) 123-459
- Email: info@bolashak.kz
- Жұмыс уақыты: Дс-Жм 9:00-18:00

Негізгі қызметтер:
- Орналастыру мәселелері
- Тұрмыстық мәселелер
- Көшіру рәсімдері
- Төлем мәселелері`,
		},
	}
}
