package grammar

// SpanishPhases returns the 28 Spanish grammar phases in the fixed order
// they must run: each phase only ever reads tokens and annotations left
// by earlier phases, never ones that run later, so the order here is load
// bearing (e.g. phase 14 downgrades a spelling annotation phases 1-13
// never touch, and later agreement phases may act on a verb an earlier
// phase already corrected).
func SpanishPhases() []Phase {
	return []Phase{
		ArticleNounAgreement,
		NounAdjectiveAgreement,
		DeterminerNounAgreement,
		SubjectVerbAgreement,
		DiacriticHomophones,
		SentenceStartCapitalization,
		PairedPunctuation,
		HomophoneConfusables,
		PorqueDisambiguation,
		SinoSiNo,
		DequeismoQueismo,
		LaismoLeismoLoismo,
		VocativeCommas,
		CompoundTenseParticiples,
		ImpersonalHaber,
		ImpersonalHacerTemporal,
		ExistentialHaberDefiniteArticle,
		CounterfactualConditional,
		CollectiveNounAgreement,
		RelativeClauseAgreement,
		UnoDeLosQue,
		Pleonasms,
		FossilizedPrepositions,
		HaAInfinitive,
		PosteriorGerund,
		InfinitiveAsImperative,
		CommonGenderExplicitReferent,
		CoordinatedSubjects,
	}
}
