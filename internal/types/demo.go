//nolint:revive // types is a standard Go package name pattern
package types

// Demo returns the sample resume offered by the "load demo" action.
func Demo() Document {
	return Document{
		PersonalInfo: PersonalInfo{
			FullName: "Pratima Singh",
			Email:    "pratima.singh@example.com",
			Phone:    "+1 (555) 012-3456",
			City:     "San Francisco, CA",
			Link:     "linkedin.com/in/pratima-singh",
			JobTitle: "Senior Product Designer",
			Summary: "Creative and detail-oriented Product Designer with over 6 years of experience in building user-centric digital products. " +
				"Proven track record of improving user engagement and streamlining workflows through intuitive design systems. " +
				"Passionate about accessibility and inclusive design practices.",
		},
		Experience: []Experience{
			{
				ID:        "1",
				Company:   "TechFlow Solutions",
				JobTitle:  "Senior Product Designer",
				StartDate: "06/2021",
				EndDate:   "Present",
				City:      "San Francisco, CA",
				Description: "• Led the redesign of the core SaaS platform, resulting in a 25% increase in user retention.\n" +
					"• Mentored a team of 3 junior designers and established a unified design system.\n" +
					"• Conducted user research and usability testing to validate new features.",
			},
			{
				ID:        "2",
				Company:   "Creative Pulse",
				JobTitle:  "UI/UX Designer",
				StartDate: "03/2018",
				EndDate:   "05/2021",
				City:      "Austin, TX",
				Description: "• Designed mobile-first interfaces for e-commerce clients, improving conversion rates by 15%.\n" +
					"• Collaborated closely with developers to ensure pixel-perfect implementation of designs.\n" +
					"• Created interactive prototypes using Figma and Protopie for stakeholder presentations.",
			},
		},
		Education: []Education{
			{
				ID:        "1",
				School:    "California College of the Arts",
				Degree:    "BFA in Interaction Design",
				StartDate: "09/2014",
				EndDate:   "05/2018",
				City:      "San Francisco, CA",
				Grade:     "3.9 GPA",
			},
		},
		Skills: []Skill{
			{ID: "1", Name: "Figma", Level: LevelExpert},
			{ID: "2", Name: "Prototyping", Level: LevelExpert},
			{ID: "3", Name: "User Research", Level: LevelAdvanced},
			{ID: "4", Name: "HTML/CSS", Level: LevelIntermediate},
			{ID: "5", Name: "Design Systems", Level: LevelAdvanced},
		},
		ThemeColor:    DefaultThemeColor,
		LayoutDensity: DensityComfortable,
	}
}
