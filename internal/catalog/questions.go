package catalog

import (
	"github.com/greenscope-tools/greenscope/internal/assess"
	"github.com/greenscope-tools/greenscope/internal/model"
)

// needsCSDDDTemporal reports whether any CSDDD threshold pathway is
// currently met, in which case the two-consecutive-years question must be
// asked before a verdict can be in scope.
func needsCSDDDTemporal(as model.AnswerSet) bool {
	if assess.MeetsCSDDDIndividualThresholds(as) {
		return true
	}
	if assess.IsUltimateParent(as) && assess.MeetsCSDDDGroupThresholds(as) {
		return true
	}
	return assess.MeetsCSDDDFranchisingThresholds(as)
}

// consecutiveYearsLabel spells out which thresholds the respondent is being
// asked to confirm, depending on the pathway that currently matches. The
// Article 40a pathway needs no counterpart: its both_over_150m option
// already encodes the consecutive-years requirement.
func consecutiveYearsLabel(as model.AnswerSet) string {
	eu := as.Is(model.KeyJurisdiction, "eu")
	scope := "EU"
	if eu {
		scope = "global"
	}

	label := "Has your company met the following CSDDD thresholds for two consecutive financial years: "
	switch {
	case assess.MeetsCSDDDIndividualThresholds(as):
		label += "1,000+ employees AND €450M+ " + scope + " turnover (individual level)"
	case assess.IsUltimateParent(as) && assess.MeetsCSDDDGroupThresholds(as):
		label += "1,000+ employees AND €450M+ " + scope + " turnover (consolidated group level)"
	case assess.MeetsCSDDDFranchisingThresholds(as):
		royalties := "€22.5M+ EU royalties"
		if eu {
			royalties = "€22.5M+ royalties"
		}
		label += royalties + " from qualifying franchising/licensing agreements AND €80M+ " + scope + " turnover"
	}
	return label + "?"
}

// Default returns the questionnaire catalog. Steps and questions are
// declared once here; visibility alone varies with the answer set.
func Default() []Step {
	return []Step{
		{
			ID:    "entity_basics",
			Title: "Company Classification",
			Questions: []Question{
				{
					Key:   model.KeyJurisdiction,
					Label: Static("Where is your company incorporated?"),
					Options: []Option{
						{Code: "eu", Label: "EU Member State"},
						{Code: "non_eu", Label: "Non-EU Country"},
					},
					Required: true,
					Help: Static(`A company is considered to be "EU" if it is governed by or formed in accordance with ` +
						`the legislation of a Member State, typically the country where it is incorporated or headquartered. ` +
						`A "non-EU company" is governed by or formed in accordance with the legislation of a third country, ` +
						`but may still be subject to EU law if it has significant operations within the EU.`),
				},
				{
					Key:   model.KeyUndertakingType,
					Label: Static("Is your company a financial or non-financial undertaking?"),
					Options: []Option{
						{Code: "financial", Label: "Financial undertaking (bank, insurance company, investment firm, asset manager)"},
						{Code: "non_financial", Label: "Non-financial undertaking (all other commercial entities)"},
					},
					Required: true,
					Help: Static("Under EU law (Article 1(8) of Delegated Regulation (EU) 2021/2178), financial " +
						"undertakings are specifically defined as credit institutions, insurance/reinsurance undertakings, " +
						"investment firms, and asset managers. All other companies are non-financial undertakings, also " +
						"referred to as real economy companies (directly producing goods or providing services)."),
				},
				{
					Key:   model.KeyNonFinancialLegalForm,
					Label: Static("Legal form of your non-financial undertaking"),
					Options: []Option{
						{Code: "limited_company", Label: "Limited Liability Company"},
						{Code: "public_company", Label: "Public Company"},
						{Code: "partnership_cooperative", Label: "Partnership, cooperative, or similar entity (listed in Annexes I and II of the Accounting Directive)"},
						{Code: "other_entity", Label: "Other entity type (not listed in Annexes I and II of the Accounting Directive)"},
					},
					Required: true,
					Visible: func(as model.AnswerSet) bool {
						return as.Is(model.KeyUndertakingType, "non_financial")
					},
					Help: Static("The EU Accounting Directive defines specific entity types by Member State that qualify " +
						`as "undertakings" in Article 1(1) and Annexes I and II. Examples include: Limited Liability Company ` +
						"(Ltd, GmbH, ApS, AB, etc.), Public Company (PLC, AG, SA, SpA, etc.), and Partnership, cooperative, " +
						"or similar entity (OHG, société en nom collectif, eG, SCOP, etc.). For the full legal text, see " +
						"Article 1(1) and Annexes 1 and 2 of the Accounting Directive: https://eur-lex.europa.eu/eli/dir/2013/34/oj/eng"),
				},
				{
					Key: model.KeyAnnexIIMemberStructure,
					Label: Static("Do all members of your partnership/cooperative who would otherwise have unlimited " +
						"liability actually have limited liability because they are themselves limited liability " +
						"companies, public companies, or comparable entities?"),
					Options: []Option{
						{Code: "yes", Label: "Yes - all unlimited liability members are limited liability entities"},
						{Code: "no", Label: "No - some unlimited liability members are individuals or other unlimited liability entities"},
					},
					Required: true,
					Visible: func(as model.AnswerSet) bool {
						return as.Is(model.KeyUndertakingType, "non_financial") &&
							as.Is(model.KeyNonFinancialLegalForm, "partnership_cooperative")
					},
					Help: Static("This distinction is important for CSRD applicability. Under Article 1(1)(b) of the " +
						"Accounting Directive, partnerships and cooperatives are only covered by CSRD if all members with " +
						"unlimited liability actually have limited liability through being limited liability companies, " +
						"public companies, or comparable entities."),
				},
				{
					Key:   model.KeyFinancialType,
					Label: Static("What type of financial institution are you?"),
					Options: []Option{
						{Code: "credit_institution", Label: "Credit Institution/Bank"},
						{Code: "snci", Label: "Small and Non-Complex Institution"},
						{Code: "insurance_company", Label: "Insurance Company"},
						{Code: "captive_insurance", Label: "Captive Insurance/Reinsurance"},
						{Code: "investment_firm", Label: "Investment Firm"},
						{Code: "asset_manager", Label: "Asset Manager"},
					},
					Required: true,
					Visible: func(as model.AnswerSet) bool {
						return as.Is(model.KeyUndertakingType, "financial")
					},
					Help: Static("Different types of financial institutions may have different reporting timelines and " +
						"requirements under EU sustainability laws."),
				},
				{
					Key:   model.KeyListingStatus,
					Label: Static("Is your company listed on a regulated market?"),
					Options: []Option{
						{Code: "listed_eu", Label: "Listed on EU regulated market"},
						{Code: "listed_non_eu", Label: "Listed on non-EU regulated market only"},
						{Code: "not_listed", Label: "Not listed"},
					},
					Required: true,
					Help: Static("A regulated market is an official stock exchange that is recognised and supervised by " +
						"government authorities. Under EU law (Article 2(1)(a) of Directive 2013/34/EU), companies listed " +
						"on any EU Member State regulated market are automatically classified as Public Interest Entities, " +
						"which affects sustainability reporting timelines."),
				},
				{
					Key:   model.KeyPublicInterest,
					Label: Static("Is your company a Public Interest Entity under EU law?"),
					Options: []Option{
						{Code: "yes", Label: "Yes (bank, insurance company, or other designated entity)"},
						{Code: "no", Label: "No"},
						{Code: "unsure", Label: "Unsure"},
					},
					Required: true,
					Visible: func(as model.AnswerSet) bool {
						return as.Is(model.KeyJurisdiction, "eu") && !as.Is(model.KeyListingStatus, "listed_eu")
					},
					Help: Static("Under Article 2(1) of Directive 2013/34/EU, Public Interest Entities are: (a) companies " +
						"listed on EU regulated markets, (b) credit institutions, (c) insurance undertakings, or (d) " +
						"companies designated by Member States as PIEs due to public relevance. Since you indicated you are " +
						"not listed on an EU regulated market, this question asks whether you fall into categories (b), (c), " +
						"or (d)."),
				},
			},
		},
		{
			ID:    "group_structure",
			Title: "Group Structure",
			Questions: []Question{
				{
					Key:   model.KeyParentStatus,
					Label: Static("Is your company a parent undertaking that controls other entities?"),
					Options: []Option{
						{Code: "yes", Label: "Yes - we have subsidiaries"},
						{Code: "no", Label: "No - we do not control other entities"},
					},
					Required: true,
					Help: Static("Under EU law (Article 22 of Directive 2013/34/EU), you are a parent undertaking if you: " +
						"(a) hold more than 50% of voting rights in another entity, (b) have the right to appoint/remove " +
						"the majority of board members, (c) have controlling influence through agreements, or (d) exercise " +
						"dominant influence through ownership. In simple terms: do you own or control other " +
						"companies/subsidiaries?"),
				},
				{
					Key:   model.KeySubsidiaryStatus,
					Label: Static("Is your company a subsidiary of another entity?"),
					Options: []Option{
						{Code: "yes_eu", Label: "Yes - EU parent company"},
						{Code: "yes_non_eu", Label: "Yes - Non-EU parent company"},
						{Code: "no", Label: "No - we are not controlled by another entity"},
					},
					Required: true,
					Help: Static("Under EU law, you are a subsidiary if another entity (parent company) controls you " +
						"through voting rights, board appointment rights, or other controlling mechanisms. This matters " +
						"because subsidiaries may be exempt from certain reporting requirements if the parent company " +
						"already complies."),
				},
			},
		},
		{
			ID:    "size_individual",
			Title: "Company Size (Individual Level)",
			Questions: []Question{
				{
					Key:   model.KeyEmployeesIndividual,
					Label: Static("Average number of employees in your company (most recent financial year)"),
					Options: []Option{
						{Code: "under_10", Label: "Under 10 (Micro)"},
						{Code: "10_49", Label: "10-49 (Small)"},
						{Code: "50_249", Label: "50-249 (Medium)"},
						{Code: "250_499", Label: "250-499"},
						{Code: "500_999", Label: "500-999"},
						{Code: "1000_2999", Label: "1,000-2,999"},
						{Code: "3000_plus", Label: "3,000+"},
					},
					Required: true,
					Help: Static("Average number of employees means the average number of persons employed by your " +
						"undertaking during the financial year. Different calculation rules may apply under CSDDD and CSRD: " +
						"CSRD principally draws on Member State rules, whereas CSDDD provides harmonised clarifications for " +
						"specific categories of employees in Article 2(4) CSDDD. In case of doubt, consider the specific " +
						"rules that are relevant for your company."),
				},
				{
					Key: model.KeyTurnoverIndividual,
					Label: Derived(func(as model.AnswerSet) string {
						if as.Is(model.KeyJurisdiction, "non_eu") {
							return "Annual net turnover generated by your company in the EU (most recent financial year)"
						}
						return "Annual net turnover of your company worldwide (most recent financial year)"
					}),
					Options: []Option{
						{Code: "under_2m", Label: "Under €2 million"},
						{Code: "2_10m", Label: "€2-10 million"},
						{Code: "10_50m", Label: "€10-50 million"},
						{Code: "50_80m", Label: "€50-80 million"},
						{Code: "80_150m", Label: "€80-150 million"},
						{Code: "150_450m", Label: "€150-450 million"},
						{Code: "450_900m", Label: "€450-900 million"},
						{Code: "900m_plus", Label: "€900 million+"},
					},
					Required: true,
					Help: Derived(func(as model.AnswerSet) string {
						base := `Under EU law (Article 2(5) of Directive 2013/34/EU), "net turnover" means the amounts ` +
							"derived from the sale of products and provision of services, after deducting sales rebates, " +
							"VAT and other taxes directly linked to turnover. Note: Special definitions apply for insurance " +
							"undertakings, credit institutions, and certain third-country undertakings—consult " +
							"sector-specific regulations if applicable. "
						if as.Is(model.KeyJurisdiction, "eu") {
							return base + "For EU companies, global turnover determines threshold compliance."
						}
						return base + "For non-EU companies, only EU-generated turnover is relevant for EU law applicability."
					}),
				},
				{
					Key: model.KeyBalanceSheetIndividual,
					Label: Derived(func(as model.AnswerSet) string {
						if as.Is(model.KeyJurisdiction, "non_eu") {
							return "Balance sheet total attributable to EU operations (most recent financial year)"
						}
						return "Balance sheet total of your company (most recent financial year)"
					}),
					Options: []Option{
						{Code: "under_2m", Label: "Under €2 million"},
						{Code: "2_5m", Label: "€2-5 million"},
						{Code: "5_25m", Label: "€5-25 million"},
						{Code: "25m_plus", Label: "€25 million+"},
					},
					Required: true,
					Help: Static("Balance sheet total means the total value of the main asset categories (subscribed " +
						"capital unpaid, formation expenses, fixed assets, current assets, and prepayments and accrued " +
						"income) as defined in Article 3(11) of the EU Accounting Directive and specified in the standard " +
						"balance sheet layouts."),
				},
			},
		},
		{
			ID:    "size_consolidated",
			Title: "Group Size (Consolidated Level)",
			Visible: func(as model.AnswerSet) bool {
				return as.Is(model.KeyParentStatus, "yes")
			},
			Questions: []Question{
				{
					Key:   model.KeyEmployeesConsolidated,
					Label: Static("Average number of employees in your group (consolidated basis)"),
					Options: []Option{
						{Code: "under_250", Label: "Under 250"},
						{Code: "250_499", Label: "250-499"},
						{Code: "500_999", Label: "500-999"},
						{Code: "1000_2999", Label: "1,000-2,999"},
						{Code: "3000_plus", Label: "3,000+"},
					},
					Required: true,
					Help: Static("Average number of employees means the average number of persons employed by your " +
						"undertaking during the financial year. Different calculation rules may apply under CSDDD and CSRD: " +
						"CSRD principally draws on Member State rules, whereas CSDDD provides harmonised clarifications for " +
						"specific categories of employees in Article 2(4) CSDDD. In case of doubt, consider the specific " +
						"rules that are relevant for your company. Consolidated employee count includes all employees " +
						"across all subsidiaries and entities within your group."),
				},
				{
					Key: model.KeyTurnoverConsolidated,
					Label: Derived(func(as model.AnswerSet) string {
						if as.Is(model.KeyJurisdiction, "non_eu") {
							return "Annual net turnover of your group in the EU (consolidated basis)"
						}
						return "Annual net turnover of your group worldwide (consolidated basis)"
					}),
					Options: []Option{
						{Code: "under_50m", Label: "Under €50 million"},
						{Code: "50_450m", Label: "€50-450 million"},
						{Code: "450_900m", Label: "€450-900 million"},
						{Code: "900m_plus", Label: "€900 million+"},
					},
					Required: true,
					Help: Derived(func(as model.AnswerSet) string {
						base := "Consolidated group turnover includes revenue from all entities within your group. Note: " +
							"Special definitions apply for insurance undertakings, credit institutions, and certain " +
							"third-country undertakings—consult sector-specific regulations if applicable. "
						if as.Is(model.KeyJurisdiction, "eu") {
							return base + "For EU companies, global consolidated turnover applies."
						}
						return base + "For non-EU companies, only EU-generated consolidated turnover is relevant."
					}),
				},
				{
					Key: model.KeyBalanceSheetConsolidated,
					Label: Derived(func(as model.AnswerSet) string {
						if as.Is(model.KeyJurisdiction, "non_eu") {
							return "Balance sheet total of your group attributable to EU operations (consolidated basis)"
						}
						return "Balance sheet total of your group (consolidated basis)"
					}),
					Options: []Option{
						{Code: "under_25m", Label: "Under €25 million"},
						{Code: "25m_plus", Label: "€25 million+"},
					},
					Required: true,
					Help: Static("Consolidated balance sheet total means the total value of the main asset categories " +
						"(subscribed capital unpaid, formation expenses, fixed assets, current assets, and prepayments and " +
						"accrued income) across all entities within your group, as defined in Article 3(11) of the EU " +
						"Accounting Directive."),
				},
			},
		},
		{
			ID:    "international_operations",
			Title: "International Operations",
			Questions: []Question{
				{
					Key:   model.KeyMultinationalEnterprise,
					Label: Static("Does your company qualify as a multinational enterprise based on its structure or activities?"),
					Options: []Option{
						{Code: "yes", Label: "Yes - we have international structure or activities"},
						{Code: "no", Label: "No - we operate domestically only"},
					},
					Required: true,
					Help: Static("Under the OECD Guidelines for Multinational Enterprises on Responsible Business Conduct, " +
						"you qualify as a multinational enterprise if your company has international structure or " +
						"activities, such as: entities established in multiple countries that coordinate operations, " +
						"cross-border operational coordination (shared management, technology, or business strategies), " +
						"significant international suppliers/customers, or contractual arrangements like franchising, " +
						"licensing, joint ventures, or distribution agreements across countries. Examples: A German company " +
						"with a French subsidiary; a UK firm sourcing from Asian suppliers; an Italian company licensing " +
						"technology internationally."),
				},
				{
					Key: model.KeyOECDAdherentCountries,
					Label: Static("Do you operate in or from countries that adhere to the OECD Guidelines for " +
						"Multinational Enterprises on Responsible Business Conduct?"),
					Options: []Option{
						{Code: "yes", Label: "Yes - we operate in/from adherent countries"},
						{Code: "no", Label: "No - we do not operate in/from adherent countries"},
					},
					Required: true,
					Visible: func(as model.AnswerSet) bool {
						return as.Is(model.KeyMultinationalEnterprise, "yes")
					},
					Help: Static("Countries that adhere to the OECD Guidelines for Multinational Enterprises on " +
						"Responsible Business Conduct include: Argentina, Australia, Austria, Belgium, Bulgaria, Brazil, " +
						"Canada, Chile, Colombia, Costa Rica, Czech Republic, Croatia, Denmark, Egypt, Estonia, Finland, " +
						"France, Germany, Greece, Hungary, Iceland, Ireland, Israel, Italy, Japan, Jordan, Kazakhstan, " +
						"Korea, Latvia, Lithuania, Luxembourg, Mexico, Morocco, Netherlands, New Zealand, Norway, Peru, " +
						"Poland, Portugal, Romania, Slovak Republic, Slovenia, Spain, Sweden, Switzerland, Tunisia, " +
						"Türkiye, Ukraine, United Kingdom, United States, and Uruguay."),
				},
			},
		},
		{
			ID:    "non_eu_csrd_scope",
			Title: "CSRD Scope Assessment (Non-EU Companies)",
			Visible: func(as model.AnswerSet) bool {
				return as.Is(model.KeyJurisdiction, "non_eu")
			},
			Questions: []Question{
				{
					Key:   model.KeyEUSecuritiesTrading,
					Label: Static("Are your company's securities admitted to trading on any EU regulated market?"),
					Options: []Option{
						{Code: "yes", Label: "Yes - admitted to trading on EU regulated market"},
						{Code: "no", Label: "No - not admitted to trading on EU regulated market"},
					},
					Required: true,
					Help: Static("Under CSRD Article 40a, third-country undertakings whose securities are admitted to " +
						"trading on EU regulated markets are directly subject to CSRD requirements, regardless of other " +
						"criteria. This includes stock exchanges in any EU Member State."),
				},
				{
					Key: model.KeyEUTurnoverThreshold,
					Label: Static("What was your company's net turnover generated in the EU in each of the last two " +
						"consecutive financial years?"),
					Options: []Option{
						{Code: "both_over_150m", Label: "Both years: over €150 million"},
						{Code: "one_over_150m", Label: "One year over €150 million, one year under €150 million"},
						{Code: "both_under_150m", Label: "Both years: €150 million or under"},
					},
					Required: true,
					Visible: func(as model.AnswerSet) bool {
						return as.Is(model.KeyEUSecuritiesTrading, "no")
					},
					Help: Static("Under CSRD Article 40a, third-country undertakings must generate net turnover in the EU " +
						"exceeding €150 million in each of the last two consecutive financial years to potentially fall " +
						"within scope (in addition to having qualifying EU subsidiaries or branches)."),
				},
				{
					Key:   model.KeyEUCorporatePresence,
					Label: Static("What type of corporate presence does your company have in the EU?"),
					Options: []Option{
						{Code: "subsidiary_only", Label: "EU subsidiary only"},
						{Code: "branch_only", Label: "EU branch only"},
						{Code: "both_subsidiary_branch", Label: "Both EU subsidiary and branch"},
						{Code: "no_presence", Label: "No EU corporate presence"},
					},
					Required: true,
					Visible: func(as model.AnswerSet) bool {
						return as.Is(model.KeyEUSecuritiesTrading, "no") &&
							as.Is(model.KeyEUTurnoverThreshold, "both_over_150m")
					},
					Help: Static("Third-country undertakings with EU turnover >€150M must have either qualifying EU " +
						"subsidiaries or branches to fall within CSRD scope."),
				},
				{
					Key:   model.KeyEUSubsidiaryQualification,
					Label: Static("Does your company have any EU subsidiary that qualifies under Article 40a?"),
					Options: []Option{
						{Code: "large_undertaking", Label: "Yes - Large undertaking (meets 2+ criteria: 250+ employees, €50M+ turnover, €25M+ balance sheet)"},
						{Code: "listed_sme", Label: "Yes - Listed SME (securities admitted to trading on EU regulated market, not micro-undertaking)"},
						{Code: "other_sme", Label: "No - Only other SME (not listed, not micro-undertaking)"},
						{Code: "micro_undertaking", Label: "No - Only micro-undertaking"},
						{Code: "no_subsidiary", Label: "No - No EU subsidiary"},
					},
					Required: true,
					Visible: func(as model.AnswerSet) bool {
						return as.Is(model.KeyEUSecuritiesTrading, "no") &&
							as.Is(model.KeyEUTurnoverThreshold, "both_over_150m") &&
							as.OneOf(model.KeyEUCorporatePresence, "subsidiary_only", "both_subsidiary_branch")
					},
					Help: Static("Under CSRD Article 40a, qualifying EU subsidiaries must be either: (1) large " +
						"undertakings, or (2) small and medium-sized undertakings (excluding micro-undertakings) that are " +
						"public-interest entities as defined in point (a) of Article 2(1) - meaning their securities are " +
						"admitted to trading on EU regulated markets. If you have multiple EU subsidiaries, answer " +
						`"Yes" if ANY subsidiary qualifies.`),
				},
				{
					Key:   model.KeyEUBranchTurnover,
					Label: Static("What is your EU branch's net turnover generated in the EU in the preceding financial year?"),
					Options: []Option{
						{Code: "over_40m", Label: "Over €40 million"},
						{Code: "under_40m", Label: "€40 million or under"},
					},
					Required: true,
					Visible: func(as model.AnswerSet) bool {
						if !as.Is(model.KeyEUSecuritiesTrading, "no") ||
							!as.Is(model.KeyEUTurnoverThreshold, "both_over_150m") {
							return false
						}
						if as.Is(model.KeyEUCorporatePresence, "branch_only") {
							return true
						}
						// Branch turnover only matters when no subsidiary qualifies.
						return as.Is(model.KeyEUCorporatePresence, "both_subsidiary_branch") &&
							as.OneOf(model.KeyEUSubsidiaryQualification, "other_sme", "micro_undertaking", "no_subsidiary")
					},
					Help: Static("Under CSRD Article 40a, EU branches are only relevant when there is no qualifying EU " +
						"subsidiary. Branches must generate net turnover in the EU exceeding €40 million in the preceding " +
						"financial year. This question only appears if you have no qualifying subsidiary."),
				},
			},
		},
		{
			ID:    "business_model",
			Title: "Business Model Specifics",
			Questions: []Question{
				{
					Key:   model.KeyHasFranchisingLicensing,
					Label: Static("Does your company have any franchising or licensing agreements?"),
					Options: []Option{
						{Code: "yes", Label: "Yes - we have franchising or licensing agreements"},
						{Code: "no", Label: "No - we do not have franchising or licensing agreements"},
					},
					Required: true,
					Help: Static("This includes any agreements where you grant rights to use your brand, business " +
						"methods, technology, or intellectual property to other parties, or where you operate under " +
						"franchise/licensing arrangements from others."),
				},
				{
					Key: model.KeyFranchisingLicensing,
					Label: Static("Do your franchising or licensing agreements in the EU meet ALL of the following CSDDD " +
						"criteria: (a) agreements with independent third parties, (b) in return for royalties, (c) ensuring " +
						"common identity and business concept, (d) requiring uniform business methods?"),
					Options: []Option{
						{Code: "yes_meets_criteria", Label: "Yes - meets all CSDDD criteria"},
						{Code: "yes_not_criteria", Label: "Yes - but does not meet all CSDDD criteria"},
						{Code: "no", Label: "No EU franchising/licensing agreements"},
					},
					Required: true,
					Visible: func(as model.AnswerSet) bool {
						return as.Is(model.KeyHasFranchisingLicensing, "yes")
					},
					Help: Static("Under the CSDDD (Article 2(1)(c) and (2)(c)), relevant franchising/licensing agreements " +
						"must be with independent third parties, in return for royalties, ensuring common identity and " +
						"business concept, and requiring uniform business methods. The CSDDD covers such relationships " +
						"because they create value chain connections that may involve human rights or environmental risks."),
				},
				{
					Key: model.KeyFranchiseRoyalties,
					Label: Static("Do these franchising/licensing agreements generate royalties exceeding €22.5 million " +
						"in the last financial year for which annual financial statements have been or should have been adopted?"),
					Options: []Option{
						{Code: "yes", Label: "Yes - €22.5 million+"},
						{Code: "no", Label: "No - under €22.5 million"},
					},
					Required: true,
					Visible: func(as model.AnswerSet) bool {
						return as.Is(model.KeyHasFranchisingLicensing, "yes") &&
							as.Is(model.KeyFranchisingLicensing, "yes_meets_criteria") &&
							as.Is(model.KeyJurisdiction, "eu")
					},
					Help: Static("For EU companies, CSDDD requires royalties to exceed €22.5 million in the last " +
						"financial year for which annual financial statements have been or should have been adopted."),
				},
				{
					Key: model.KeyFranchiseEURoyalties,
					Label: Static("Do these EU franchising/licensing agreements generate royalties exceeding €22.5 " +
						"million in the Union in the financial year preceding the last financial year?"),
					Options: []Option{
						{Code: "yes", Label: "Yes - €22.5 million+ EU royalties"},
						{Code: "no", Label: "No - under €22.5 million EU royalties"},
					},
					Required: true,
					Visible: func(as model.AnswerSet) bool {
						return as.Is(model.KeyHasFranchisingLicensing, "yes") &&
							as.Is(model.KeyFranchisingLicensing, "yes_meets_criteria") &&
							as.Is(model.KeyJurisdiction, "non_eu")
					},
					Help: Static("For non-EU companies, CSDDD requires royalties exceeding €22.5 million in the Union in " +
						"the financial year preceding the last financial year."),
				},
			},
		},
		{
			ID:    "indirect_applicability",
			Title: "Indirect Impact Assessment",
			Visible: func(as model.AnswerSet) bool {
				// Only relevant when at least one of CSRD/CSDDD does not
				// apply directly.
				return !assess.AssessCSDDD(as).InScope || !assess.AssessCSRD(as).InScope
			},
			Questions: []Question{
				{
					Key: model.KeyIndirectRelationships,
					Label: Static("Do you have significant business relationships (as supplier, customer, partner, or " +
						"investee) with large companies or multinational enterprises that may be subject to EU " +
						"sustainability frameworks?"),
					Options: []Option{
						{Code: "yes", Label: "Yes - we have relationships with large companies subject to EU frameworks"},
						{Code: "no", Label: "No - we do not have such relationships"},
						{Code: "unsure", Label: "Unsure - requires further analysis"},
					},
					Required: true,
					Help: Static("Based on your answers given, your company is likely not in scope of the CSRD and CSDDD. " +
						"However, even where your company is not in scope, you may be indirectly affected through " +
						"requirements that demand engagement with business partners. Large companies subject to these " +
						"frameworks must request sustainability information, due diligence documentation, or compliance " +
						"commitments from their suppliers, customers, and partners as part of their own compliance. This " +
						"includes relationships with: companies subject to CSDDD (1,000+ employees and €450M+ turnover, " +
						"ultimate parent companies whose groups meet these thresholds at the consolidated level, or " +
						"companies with qualifying franchising/licensing agreements generating €22.5M+ royalties), " +
						"companies subject to CSRD (large EU companies meeting 2+ criteria: 250+ employees, €50M+ " +
						"turnover, €25M+ balance sheet), major multinational corporations, listed companies, or companies " +
						"in specifically regulated industries."),
				},
			},
		},
		{
			ID:      "temporal_verification",
			Title:   "Temporal Requirements Verification",
			Visible: needsCSDDDTemporal,
			Questions: []Question{
				{
					Key:   model.KeyConsecutiveYearsCSDDD,
					Label: Derived(consecutiveYearsLabel),
					Options: []Option{
						{Code: "yes", Label: "Yes - met these specific thresholds for two consecutive years"},
						{Code: "no", Label: "No - only met thresholds in one year or neither year"},
						{Code: "uncertain", Label: "Uncertain/requires further analysis"},
					},
					Required: true,
					Visible:  needsCSDDDTemporal,
					Help: Static("CSDDD obligations only begin after a company meets the specific size and turnover " +
						`thresholds for two consecutive financial years. This "consecutive years" requirement prevents ` +
						"temporary business fluctuations (like one-time contracts, acquisitions, or seasonal spikes) from " +
						"triggering permanent legal compliance obligations. The law recognizes that sustainability due " +
						"diligence requirements should only apply to companies with sustained, demonstrable scale rather " +
						"than temporary threshold breaches."),
				},
			},
		},
		{
			ID:    "timeline",
			Title: "Timeline Assessment",
			Questions: []Question{
				{
					Key:   model.KeyFutureThresholds,
					Label: Static("Based on projected growth, do you expect to meet higher thresholds in consecutive financial years?"),
					Options: []Option{
						{Code: "yes", Label: "Yes - significant growth expected"},
						{Code: "maybe", Label: "Possibly - moderate growth expected"},
						{Code: "no", Label: "No - stable size expected"},
					},
					Required: true,
					Help: Static("Many EU laws require companies to meet size thresholds for two consecutive financial " +
						"years before obligations begin. This question helps assess whether you should prepare for future " +
						"compliance even if not currently in scope."),
				},
				{
					Key:   model.KeyGrowthMetrics,
					Label: Static("If growth is expected, which metrics will likely increase?"),
					Options: []Option{
						{Code: "employees", Label: "Employee count"},
						{Code: "turnover", Label: "Turnover"},
						{Code: "balance_sheet", Label: "Balance sheet total"},
						{Code: "multiple", Label: "Multiple metrics"},
					},
					Required: true,
					Visible: func(as model.AnswerSet) bool {
						return as.OneOf(model.KeyFutureThresholds, "yes", "maybe")
					},
					Help: Static("Understanding which specific thresholds might be crossed helps determine when " +
						"obligations might trigger and what preparation is needed."),
				},
			},
		},
	}
}
