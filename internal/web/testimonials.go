package web

import "github.com/conorfennell/quizflow/internal/domain"

// Testimonials are shown on the intro and the offer.
var Testimonials = []domain.Testimonial{
	{
		Name:   "Maria Silva",
		Age:    62,
		Text:   "Depois de 3 meses usando o programa, minha memória melhorou muito! Consigo lembrar de nomes e datas com mais facilidade.",
		Avatar: "https://i.postimg.cc/nrRq6CK8/499548560-122107819226872104-6326572501670952078-n.jpg",
	},
	{
		Name:   "José Santos",
		Age:    58,
		Text:   "Os exercícios são divertidos e eficazes. Sinto minha mente mais ágil e concentrada no trabalho.",
		Avatar: "https://i.postimg.cc/BQRKHWMC/492962630-2305408356523369-1719661736900287702-n.jpg",
	},
	{
		Name:   "Ana Costa",
		Age:    67,
		Text:   "Meu médico notou a diferença! Meus testes cognitivos melhoraram significativamente.",
		Avatar: "https://i.postimg.cc/YqDxPy84/75594412-666481110541873-5062177093631082496-n.jpg",
	},
}
