package service

import (
	"github.com/peds-emergency-server/internal/domain"
)

// registerBundles wires every authored treatment bundle. Shock subtypes that
// share management with a pattern diagnosis reuse its builder.
func (r *InterventionRecommender) registerBundles() {
	r.register("dka", buildDKABundle)
	r.register("hypoglycemia", buildHypoglycemiaBundle)
	r.register("septic_shock", buildSepticShockBundle)
	r.register("hypovolemic_shock", buildHypovolemicShockBundle)
	r.register("anaphylaxis", buildAnaphylaxisBundle)
	r.register("anaphylactic_shock", buildAnaphylaxisBundle)
	r.register("severe_asthma", buildSevereAsthmaBundle)
	r.register("status_epilepticus", buildStatusEpilepticusBundle)
	r.register("meningitis", buildMeningitisBundle)
	r.register("postpartum_hemorrhage", buildPPHBundle)
	r.register("eclampsia", buildEclampsiaBundle)
	r.register("hyperkalemia", buildHyperkalemiaBundle)
	r.register("severe_dehydration", buildSevereDehydrationBundle)
	r.register("neonatal_sepsis", buildNeonatalSepsisBundle)
	r.register("severe_burns", buildSevereBurnsBundle)
	r.register("tension_pneumothorax", buildTensionPneumothoraxBundle)
	r.register("obstructive_shock", buildTensionPneumothoraxBundle)
	r.register("severe_malaria", buildSevereMalariaBundle)
	r.register("heart_failure", buildHeartFailureBundle)
	r.register("pneumonia", buildPneumoniaBundle)
	r.register("croup", buildCroupBundle)
	r.register("upper_airway_obstruction", buildUpperAirwayBundle)
}

func buildDKABundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	ketoneTest := domain.RequiredTest{Name: "Blood or urine ketones", Threshold: "blood ketones > 3 mmol/L", Priority: domain.PriorityStat}
	gasTest := domain.RequiredTest{Name: "Venous blood gas", Threshold: "pH < 7.3 or bicarbonate < 15 mmol/L", Priority: domain.PriorityStat}
	electrolytes := domain.RequiredTest{Name: "Serum electrolytes including potassium", Priority: domain.PriorityStat}

	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "fluid_bolus",
				Name:           "Isotonic fluid bolus",
				Tier:           domain.TierImmediate,
				Indication:     "Restore circulating volume before any insulin",
				RiskIfWrong:    "Low — isotonic fluids are well tolerated at this volume",
				BenefitIfRight: "Reverses hypoperfusion and begins lowering glucose",
				TimeWindow:     "First 15 minutes",
				Dosing:         weightDose(s, 10, "mL over 30-60 min", "10 mL/kg 0.9% saline", "IV"),
				Monitoring:     []string{"Reassess perfusion after each bolus", "Neurological observations hourly for cerebral edema"},
			},
			{
				ID:             "oxygen_high_flow",
				Name:           "High-flow oxygen",
				Tier:           domain.TierImmediate,
				Indication:     "Shock physiology with acidosis",
				RiskIfWrong:    "Negligible",
				BenefitIfRight: "Supports oxygen delivery during resuscitation",
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "potassium_replacement",
				Name:           "Potassium replacement in maintenance fluids",
				Tier:           domain.TierUrgent,
				Indication:     "Total-body potassium depletion once urine output confirmed",
				RiskIfWrong:    "Hyperkalemia if renal failure is present",
				BenefitIfRight: "Prevents insulin-induced hypokalemic arrhythmia",
				TimeWindow:     "Within 2 hours, after first void",
				RequiredTests:  []domain.RequiredTest{electrolytes},
			},
		},
		Confirmatory: []domain.Intervention{
			{
				ID:                "insulin_infusion",
				Name:              "Insulin infusion",
				Tier:              domain.TierConfirmatory,
				Indication:        "Confirmed ketoacidosis only",
				Contraindications: []string{"Hyperosmolar hyperglycemic state without ketosis", "Serum potassium < 3.0 mmol/L"},
				RiskIfWrong:       "Cerebral edema or severe hypokalemia in a non-ketotic hyperosmolar patient",
				BenefitIfRight:    "Halts ketogenesis and corrects acidosis",
				TimeWindow:        "Start 1 hour after fluids begin",
				Dosing:            weightDose1(s, 0.1, "units/hr", "0.05-0.1 units/kg/hr", "IV infusion"),
				RequiredTests:     []domain.RequiredTest{ketoneTest, gasTest},
				Monitoring:        []string{"Hourly glucose", "2-hourly potassium", "Neurological observations for cerebral edema"},
			},
		},
		RequiredTests: []domain.RequiredTest{ketoneTest, gasTest, electrolytes},
	}
}

func buildHypoglycemiaBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "dextrose_bolus",
				Name:           "Dextrose bolus",
				Tier:           domain.TierImmediate,
				Indication:     "Documented or strongly suspected hypoglycemia",
				RiskIfWrong:    "Low — transient hyperglycemia only",
				BenefitIfRight: "Immediate reversal of neuroglycopenia",
				TimeWindow:     "Immediately",
				Dosing:         weightDose(s, 5, "mL", "5 mL/kg of 10% dextrose", "IV"),
				Monitoring:     []string{"Recheck glucose 15 minutes after the bolus"},
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "dextrose_maintenance",
				Name:           "Dextrose-containing maintenance fluids",
				Tier:           domain.TierUrgent,
				Indication:     "Prevent recurrent hypoglycemia after correction",
				RiskIfWrong:    "Minimal",
				BenefitIfRight: "Stable glucose while the cause is found",
				TimeWindow:     "Within 30 minutes",
			},
		},
		Confirmatory: []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{
			{Name: "Repeat blood glucose", Threshold: "> 4 mmol/L after bolus", Priority: domain.PriorityStat},
		},
	}
}

func buildSepticShockBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	cultures := domain.RequiredTest{Name: "Blood cultures", Priority: domain.PriorityStat}
	lactate := domain.RequiredTest{Name: "Serum lactate", Threshold: "> 2 mmol/L supports diagnosis", Priority: domain.PriorityStat}

	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "oxygen_high_flow",
				Name:           "High-flow oxygen",
				Tier:           domain.TierImmediate,
				Indication:     "Shock physiology",
				RiskIfWrong:    "Negligible",
				BenefitIfRight: "Maximizes oxygen delivery",
			},
			{
				ID:             "fluid_bolus",
				Name:           "Isotonic fluid bolus",
				Tier:           domain.TierImmediate,
				Indication:     "Hypoperfusion from presumed sepsis",
				RiskIfWrong:    "Low unless cardiac dysfunction coexists — reassess after each bolus",
				BenefitIfRight: "Restores perfusion pressure",
				TimeWindow:     "First 15 minutes",
				Dosing:         weightDose(s, 20, "mL rapid", "20 mL/kg 0.9% saline, repeat to 40-60 mL/kg", "IV/IO"),
				Monitoring:     []string{"Reassess perfusion, liver size, and crackles after each bolus"},
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "empiric_antibiotics",
				Name:           "Empiric broad-spectrum antibiotics",
				Tier:           domain.TierUrgent,
				Indication:     "Presumed septic shock — do not wait for culture results",
				RiskIfWrong:    "Single broad-spectrum dose carries minimal harm",
				BenefitIfRight: "Each hour of delay increases mortality",
				TimeWindow:     "Within 1 hour of recognition",
				Dosing:         weightDose(s, 50, "mg", "Ceftriaxone 50 mg/kg (max 2 g)", "IV"),
				RequiredTests:  []domain.RequiredTest{cultures},
			},
		},
		Confirmatory: []domain.Intervention{
			{
				ID:                "vasopressor_infusion",
				Name:              "Vasopressor infusion",
				Tier:              domain.TierConfirmatory,
				Indication:        "Fluid-refractory shock only",
				Contraindications: []string{"Uncorrected hypovolemia"},
				RiskIfWrong:       "Ischemia and arrhythmia if volume has not been restored",
				BenefitIfRight:    "Restores perfusion pressure in fluid-refractory shock",
				RequiredTests: []domain.RequiredTest{
					{Name: "Reassessment after 40-60 mL/kg fluids", Threshold: "Persistent hypotension or poor perfusion", Priority: domain.PriorityStat},
				},
				Dosing: weightDose1(s, 0.1, "µg/min starting", "Epinephrine 0.05-0.3 µg/kg/min", "IV infusion"),
			},
		},
		RequiredTests: []domain.RequiredTest{cultures, lactate},
	}
}

func buildHypovolemicShockBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "fluid_bolus",
				Name:           "Rapid isotonic fluid bolus",
				Tier:           domain.TierImmediate,
				Indication:     "Volume loss with hypoperfusion",
				RiskIfWrong:    "Low; reassess for pulmonary congestion after each bolus",
				BenefitIfRight: "Directly corrects the deficit",
				TimeWindow:     "First 15 minutes",
				Dosing:         weightDose(s, 20, "mL rapid", "20 mL/kg 0.9% saline, repeat as needed", "IV/IO"),
			},
			{
				ID:             "bleeding_control",
				Name:           "Direct control of external bleeding",
				Tier:           domain.TierImmediate,
				Indication:     "Any visible hemorrhage",
				RiskIfWrong:    "None",
				BenefitIfRight: "Stops ongoing losses",
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "blood_transfusion",
				Name:           "Blood transfusion",
				Tier:           domain.TierUrgent,
				Indication:     "Hemorrhagic shock or no response to 40 mL/kg crystalloid",
				RiskIfWrong:    "Transfusion reaction risk; crossmatch when time allows",
				BenefitIfRight: "Restores oxygen-carrying capacity",
				TimeWindow:     "Within 1 hour for ongoing hemorrhage",
				Dosing:         weightDose(s, 10, "mL packed cells", "10-15 mL/kg packed red cells", "IV"),
				RequiredTests:  []domain.RequiredTest{{Name: "Crossmatch and hemoglobin", Priority: domain.PriorityStat}},
			},
		},
		Confirmatory: []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{
			{Name: "Hemoglobin and crossmatch", Priority: domain.PriorityStat},
		},
	}
}

func buildAnaphylaxisBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "epinephrine_im",
				Name:           "Intramuscular epinephrine",
				Tier:           domain.TierImmediate,
				Indication:     "Any suspicion of anaphylaxis — epinephrine before everything else",
				RiskIfWrong:    "Transient tachycardia and tremor only at IM doses",
				BenefitIfRight: "The only intervention that reverses airway edema and distributive shock",
				TimeWindow:     "Immediately; repeat every 5 minutes as needed",
				Dosing:         weightDose1(s, 0.01, "mg (max 0.5 mg)", "0.01 mg/kg of 1 mg/mL solution", "IM anterolateral thigh"),
				Monitoring:     []string{"Observe at least 6 hours for biphasic reaction"},
			},
			{
				ID:             "oxygen_high_flow",
				Name:           "High-flow oxygen, supine position, legs raised",
				Tier:           domain.TierImmediate,
				Indication:     "Distributive shock physiology",
				RiskIfWrong:    "Negligible",
				BenefitIfRight: "Supports preload and oxygenation",
			},
			{
				ID:             "fluid_bolus",
				Name:           "Isotonic fluid bolus",
				Tier:           domain.TierImmediate,
				Indication:     "Hypotension after epinephrine",
				RiskIfWrong:    "Low",
				BenefitIfRight: "Counteracts capillary leak",
				Dosing:         weightDose(s, 20, "mL rapid", "20 mL/kg 0.9% saline", "IV/IO"),
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "nebulized_salbutamol",
				Name:           "Nebulized bronchodilator",
				Tier:           domain.TierUrgent,
				Indication:     "Persistent bronchospasm after epinephrine",
				RiskIfWrong:    "Minimal",
				BenefitIfRight: "Relieves lower airway obstruction",
				TimeWindow:     "After epinephrine, never instead of it",
			},
			{
				ID:             "corticosteroids_systemic",
				Name:           "Systemic corticosteroids",
				Tier:           domain.TierUrgent,
				Indication:     "May blunt protracted reactions",
				RiskIfWrong:    "Minimal single-dose harm",
				BenefitIfRight: "Possible reduction of late-phase symptoms",
			},
		},
		Confirmatory:  []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{},
	}
}

func buildSevereAsthmaBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "oxygen_high_flow",
				Name:           "Oxygen titrated to SpO2 ≥ 94%",
				Tier:           domain.TierImmediate,
				Indication:     "Hypoxemia in acute asthma",
				RiskIfWrong:    "Negligible",
				BenefitIfRight: "Corrects hypoxemia during bronchodilation",
			},
			{
				ID:             "nebulized_salbutamol",
				Name:           "Continuous nebulized salbutamol with ipratropium",
				Tier:           domain.TierImmediate,
				Indication:     "Severe airflow limitation",
				RiskIfWrong:    "Tachycardia and tremor only",
				BenefitIfRight: "First-line reversal of bronchospasm",
				TimeWindow:     "Back-to-back for the first hour",
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "corticosteroids_systemic",
				Name:           "Systemic corticosteroids",
				Tier:           domain.TierUrgent,
				Indication:     "All severe exacerbations",
				RiskIfWrong:    "Minimal single-course harm",
				BenefitIfRight: "Reduces admission and relapse",
				TimeWindow:     "Within 1 hour",
				Dosing:         weightDose(s, 1, "mg (max 40 mg)", "Prednisolone 1-2 mg/kg or IV hydrocortisone", "PO/IV"),
			},
			{
				ID:             "magnesium_sulfate_iv",
				Name:           "IV magnesium sulfate",
				Tier:           domain.TierUrgent,
				Indication:     "Poor response to first-hour bronchodilators",
				RiskIfWrong:    "Hypotension with rapid infusion",
				BenefitIfRight: "Additional bronchodilation in severe attacks",
				Dosing:         weightDose(s, 40, "mg over 20 min", "40 mg/kg (max 2 g)", "IV"),
			},
		},
		Confirmatory:  []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{{Name: "Blood gas if deteriorating", Threshold: "Normal or rising CO2 signals exhaustion", Priority: domain.PriorityUrgent}},
	}
}

func buildStatusEpilepticusBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	glucose := domain.RequiredTest{Name: "Blood glucose", Threshold: "exclude glucose < 3 mmol/L", Priority: domain.PriorityStat}

	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "secure_airway",
				Name:           "Position airway, suction, high-flow oxygen",
				Tier:           domain.TierImmediate,
				Indication:     "Every convulsing patient",
				RiskIfWrong:    "None",
				BenefitIfRight: "Prevents hypoxic injury during the seizure",
			},
			{
				ID:             "benzodiazepine_seizure",
				Name:           "Benzodiazepine",
				Tier:           domain.TierImmediate,
				Indication:     "Seizure lasting over 5 minutes",
				RiskIfWrong:    "Respiratory depression — prepare bag-mask",
				BenefitIfRight: "Terminates most seizures promptly",
				TimeWindow:     "Immediately; repeat once after 5 minutes",
				Dosing:         weightDose1(s, 0.1, "mg (max 4 mg)", "Lorazepam 0.1 mg/kg IV or midazolam 0.15 mg/kg IM", "IV/IM"),
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "second_line_antiepileptic",
				Name:           "Second-line antiepileptic load",
				Tier:           domain.TierUrgent,
				Indication:     "Seizure persisting after two benzodiazepine doses",
				RiskIfWrong:    "Hypotension and sedation",
				BenefitIfRight: "Terminates benzodiazepine-refractory status",
				TimeWindow:     "By 20 minutes of seizure activity",
				Dosing:         weightDose(s, 40, "mg PE", "Levetiracetam 40-60 mg/kg or phenytoin 20 mg/kg", "IV"),
			},
		},
		Confirmatory:  []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{glucose, {Name: "Electrolytes and calcium", Priority: domain.PriorityUrgent}},
	}
}

func buildMeningitisBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "oxygen_high_flow",
				Name:           "Oxygen and careful positioning",
				Tier:           domain.TierImmediate,
				Indication:     "Reduced consciousness with suspected CNS infection",
				RiskIfWrong:    "Negligible",
				BenefitIfRight: "Protects against secondary hypoxic injury",
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "empiric_antibiotics",
				Name:           "Empiric antibiotics for meningitis",
				Tier:           domain.TierUrgent,
				Indication:     "Suspected bacterial meningitis — never delay for lumbar puncture",
				RiskIfWrong:    "Single broad-spectrum course carries minimal harm",
				BenefitIfRight: "Mortality rises steeply with each hour of delay",
				TimeWindow:     "Within 1 hour",
				Dosing:         weightDose(s, 100, "mg (max 4 g)", "Ceftriaxone 100 mg/kg", "IV"),
				RequiredTests:  []domain.RequiredTest{{Name: "Blood cultures before antibiotics if immediate", Priority: domain.PriorityStat}},
			},
		},
		Confirmatory: []domain.Intervention{
			{
				ID:                "lumbar_puncture",
				Name:              "Lumbar puncture",
				Tier:              domain.TierConfirmatory,
				Indication:        "Confirm organism and sensitivities",
				Contraindications: []string{"Signs of raised intracranial pressure", "Coagulopathy", "Cardiovascular instability"},
				RiskIfWrong:       "Herniation if intracranial pressure is raised",
				BenefitIfRight:    "Targets therapy to the organism",
				RequiredTests: []domain.RequiredTest{
					{Name: "Fundoscopy / clinical ICP assessment", Threshold: "No papilledema or focal signs", Priority: domain.PriorityUrgent},
				},
			},
		},
		RequiredTests: []domain.RequiredTest{{Name: "Blood cultures", Priority: domain.PriorityStat}},
	}
}

func buildPPHBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "uterine_massage_uterotonics",
				Name:           "Uterine massage and oxytocin",
				Tier:           domain.TierImmediate,
				Indication:     "Atony is the most common cause of postpartum hemorrhage",
				RiskIfWrong:    "Minimal",
				BenefitIfRight: "Controls atonic bleeding at its source",
				TimeWindow:     "Immediately",
				Dosing:         &domain.Dosing{Formula: "Oxytocin 10 IU IM, then 20-40 IU in 500 mL infusion", Route: "IM then IV infusion"},
			},
			{
				ID:             "fluid_bolus",
				Name:           "Rapid crystalloid resuscitation, two large-bore IVs",
				Tier:           domain.TierImmediate,
				Indication:     "Hemorrhagic hypovolemia",
				RiskIfWrong:    "Low",
				BenefitIfRight: "Maintains perfusion while bleeding is controlled",
				Dosing:         weightDose(s, 20, "mL rapid", "20 mL/kg warmed crystalloid", "IV"),
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "tranexamic_acid",
				Name:           "Tranexamic acid",
				Tier:           domain.TierUrgent,
				Indication:     "All postpartum hemorrhage within 3 hours of birth",
				RiskIfWrong:    "Small thrombosis risk",
				BenefitIfRight: "Reduces death from bleeding",
				TimeWindow:     "Within 3 hours of delivery",
				Dosing:         &domain.Dosing{Formula: "1 g over 10 minutes, repeat once if bleeding continues", Route: "IV"},
			},
			{
				ID:             "blood_transfusion",
				Name:           "Blood transfusion",
				Tier:           domain.TierUrgent,
				Indication:     "Ongoing loss or shock despite crystalloid",
				RiskIfWrong:    "Transfusion reaction risk",
				BenefitIfRight: "Restores carrying capacity and clotting factors",
				RequiredTests:  []domain.RequiredTest{{Name: "Crossmatch, hemoglobin, coagulation", Priority: domain.PriorityStat}},
			},
		},
		Confirmatory:  []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{{Name: "Hemoglobin and coagulation profile", Priority: domain.PriorityStat}},
	}
}

func buildEclampsiaBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "magnesium_sulfate",
				Name:           "Magnesium sulfate loading dose",
				Tier:           domain.TierImmediate,
				Indication:     "Eclamptic seizure — magnesium, not benzodiazepines, is first line",
				RiskIfWrong:    "Monitor reflexes and respiratory rate for toxicity",
				BenefitIfRight: "Terminates and prevents eclamptic seizures",
				TimeWindow:     "Immediately",
				Dosing:         &domain.Dosing{Formula: "4 g over 5-15 minutes, then 1 g/hr for 24 hours", Route: "IV"},
				Monitoring:     []string{"Patellar reflexes, respiratory rate, and urine output hourly"},
			},
			{
				ID:             "secure_airway",
				Name:           "Left-lateral position, airway protection, oxygen",
				Tier:           domain.TierImmediate,
				Indication:     "Seizing or post-ictal pregnant patient",
				RiskIfWrong:    "None",
				BenefitIfRight: "Prevents aspiration and aortocaval compression",
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "antihypertensive_iv",
				Name:           "IV antihypertensive",
				Tier:           domain.TierUrgent,
				Indication:     "Systolic ≥ 160 mmHg",
				RiskIfWrong:    "Overshoot hypotension compromises placental perfusion",
				BenefitIfRight: "Prevents stroke",
				TimeWindow:     "Within 30 minutes",
				Dosing:         &domain.Dosing{Formula: "Labetalol 20 mg or hydralazine 5-10 mg", Route: "IV"},
			},
			{
				ID:             "urgent_delivery_planning",
				Name:           "Obstetric review for delivery",
				Tier:           domain.TierUrgent,
				Indication:     "Delivery is the definitive treatment",
				RiskIfWrong:    "Premature delivery if diagnosis is wrong",
				BenefitIfRight: "Removes the cause",
			},
		},
		Confirmatory:  []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{{Name: "Platelets, liver enzymes, creatinine, urine protein", Priority: domain.PriorityStat}},
	}
}

func buildHyperkalemiaBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	potassium := domain.RequiredTest{Name: "Serum potassium", Threshold: "> 6.5 mmol/L or ECG changes", Priority: domain.PriorityStat}
	ecg := domain.RequiredTest{Name: "12-lead ECG", Threshold: "Peaked T waves, widened QRS", Priority: domain.PriorityStat}

	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "calcium_gluconate",
				Name:           "IV calcium gluconate",
				Tier:           domain.TierImmediate,
				Indication:     "Suspected hyperkalemia with any ECG change — stabilize the myocardium first",
				RiskIfWrong:    "Low at this dose; avoids nothing by waiting",
				BenefitIfRight: "Prevents ventricular arrhythmia within minutes",
				TimeWindow:     "Immediately",
				Dosing:         weightDose1(s, 0.5, "mL of 10% (max 20 mL)", "0.5 mL/kg calcium gluconate 10% over 5 min", "IV"),
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "insulin_dextrose_shift",
				Name:           "Insulin with dextrose",
				Tier:           domain.TierUrgent,
				Indication:     "Shift potassium intracellularly",
				RiskIfWrong:    "Hypoglycemia — monitor glucose",
				BenefitIfRight: "Lowers potassium within 15 minutes",
				TimeWindow:     "Within 30 minutes",
				Dosing:         weightDose1(s, 0.1, "units with dextrose", "Insulin 0.1 units/kg with 0.5 g/kg dextrose", "IV"),
				RequiredTests:  []domain.RequiredTest{potassium},
			},
			{
				ID:             "nebulized_salbutamol",
				Name:           "Nebulized salbutamol",
				Tier:           domain.TierUrgent,
				Indication:     "Adjunct intracellular shift",
				RiskIfWrong:    "Tachycardia only",
				BenefitIfRight: "Additive potassium-lowering effect",
			},
		},
		Confirmatory: []domain.Intervention{
			{
				ID:                "dialysis_referral",
				Name:              "Urgent dialysis referral",
				Tier:              domain.TierConfirmatory,
				Indication:        "Confirmed refractory hyperkalemia or renal failure",
				Contraindications: []string{},
				RiskIfWrong:       "Invasive access in a patient who may not need it",
				BenefitIfRight:    "Definitive potassium removal",
				RequiredTests:     []domain.RequiredTest{potassium},
			},
		},
		RequiredTests: []domain.RequiredTest{potassium, ecg},
	}
}

func buildSevereDehydrationBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "fluid_bolus",
				Name:           "Isotonic fluid bolus",
				Tier:           domain.TierImmediate,
				Indication:     "Severe dehydration with hypoperfusion",
				RiskIfWrong:    "Low; reassess after each bolus",
				BenefitIfRight: "Restores circulating volume",
				Dosing:         weightDose(s, 20, "mL over 15 min", "20 mL/kg 0.9% saline", "IV/IO"),
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "rehydration_plan",
				Name:           "Calculated deficit replacement",
				Tier:           domain.TierUrgent,
				Indication:     "After perfusion is restored",
				RiskIfWrong:    "Overcorrection risks sodium shifts",
				BenefitIfRight: "Replaces the full deficit over 24-48 hours",
				RequiredTests:  []domain.RequiredTest{{Name: "Electrolytes and glucose", Priority: domain.PriorityUrgent}},
			},
		},
		Confirmatory:  []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{{Name: "Electrolytes, urea, glucose", Priority: domain.PriorityUrgent}},
	}
}

func buildNeonatalSepsisBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "oxygen_high_flow",
				Name:           "Oxygen and thermal care",
				Tier:           domain.TierImmediate,
				Indication:     "Unstable neonate — prevent hypothermia and hypoxia",
				RiskIfWrong:    "Negligible",
				BenefitIfRight: "Stabilizes while sepsis is treated",
			},
			{
				ID:             "fluid_bolus",
				Name:           "Cautious isotonic bolus",
				Tier:           domain.TierImmediate,
				Indication:     "Poor perfusion",
				RiskIfWrong:    "Neonatal myocardium tolerates volume poorly — 10 mL/kg aliquots",
				BenefitIfRight: "Restores perfusion",
				Dosing:         weightDose(s, 10, "mL over 30 min", "10 mL/kg 0.9% saline", "IV"),
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "empiric_antibiotics",
				Name:           "Ampicillin and gentamicin",
				Tier:           domain.TierUrgent,
				Indication:     "Suspected neonatal sepsis",
				RiskIfWrong:    "Short empiric course carries minimal harm",
				BenefitIfRight: "Covers group B strep, E. coli, and listeria",
				TimeWindow:     "Within 1 hour",
				Dosing:         weightDose(s, 50, "mg ampicillin", "Ampicillin 50 mg/kg + gentamicin 4 mg/kg", "IV"),
				RequiredTests:  []domain.RequiredTest{{Name: "Blood culture before antibiotics", Priority: domain.PriorityStat}},
			},
		},
		Confirmatory:  []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{{Name: "Blood culture, glucose, gas", Priority: domain.PriorityStat}},
	}
}

func buildSevereBurnsBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "secure_airway",
				Name:           "Early airway assessment",
				Tier:           domain.TierImmediate,
				Indication:     "Inhalational injury can obstruct rapidly — intubate early if suspected",
				RiskIfWrong:    "Intubation of a stable airway is recoverable; a lost burned airway is not",
				BenefitIfRight: "Prevents late, impossible intubation",
			},
			{
				ID:             "burn_first_aid",
				Name:           "Cool running water, then clean dry cover",
				Tier:           domain.TierImmediate,
				Indication:     "Within 3 hours of injury",
				RiskIfWrong:    "Hypothermia if prolonged in small children",
				BenefitIfRight: "Limits burn depth progression",
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "burn_fluid_resuscitation",
				Name:           "Parkland-formula fluid resuscitation",
				Tier:           domain.TierUrgent,
				Indication:     "Burns over 10% body surface area",
				RiskIfWrong:    "Fluid overload",
				BenefitIfRight: "Prevents burn shock",
				TimeWindow:     "Start within 1 hour, calculated from injury time",
				Dosing:         &domain.Dosing{Formula: "4 mL/kg × %TBSA over 24 h, half in first 8 h, plus maintenance", Route: "IV"},
				Monitoring:     []string{"Titrate to urine output 1 mL/kg/hr"},
			},
			{
				ID:             "analgesia_iv",
				Name:           "IV opioid analgesia",
				Tier:           domain.TierUrgent,
				Indication:     "Burn pain",
				RiskIfWrong:    "Respiratory depression — titrate",
				BenefitIfRight: "Humane and reduces physiologic stress",
			},
		},
		Confirmatory:  []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{{Name: "Carboxyhemoglobin if enclosed-space fire", Priority: domain.PriorityUrgent}},
	}
}

func buildTensionPneumothoraxBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "needle_decompression",
				Name:           "Needle decompression",
				Tier:           domain.TierImmediate,
				Indication:     "Clinical tension physiology — never wait for imaging",
				RiskIfWrong:    "Small pneumothorax from the needle, treatable",
				BenefitIfRight: "Immediately reverses obstructive arrest physiology",
				TimeWindow:     "Immediately on clinical diagnosis",
			},
			{
				ID:             "oxygen_high_flow",
				Name:           "High-flow oxygen",
				Tier:           domain.TierImmediate,
				Indication:     "Obstructed venous return with hypoxemia",
				RiskIfWrong:    "Negligible",
				BenefitIfRight: "Supports oxygenation and nitrogen washout",
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "chest_drain",
				Name:           "Intercostal chest drain",
				Tier:           domain.TierUrgent,
				Indication:     "Definitive management after decompression",
				RiskIfWrong:    "Procedural injury",
				BenefitIfRight: "Prevents re-accumulation",
				TimeWindow:     "Immediately after needle decompression",
			},
		},
		Confirmatory:  []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{{Name: "Post-drain chest radiograph", Priority: domain.PriorityUrgent}},
	}
}

func buildSevereMalariaBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	parasitology := domain.RequiredTest{Name: "Malaria rapid test and blood film", Threshold: "Positive parasitemia", Priority: domain.PriorityStat}

	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "dextrose_bolus",
				Name:           "Check and correct glucose",
				Tier:           domain.TierImmediate,
				Indication:     "Hypoglycemia is common and lethal in severe malaria",
				RiskIfWrong:    "Low",
				BenefitIfRight: "Reverses an immediately treatable cause of coma",
				Dosing:         weightDose(s, 5, "mL", "5 mL/kg of 10% dextrose if glucose < 3 mmol/L", "IV"),
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "antimalarial_artesunate",
				Name:           "Parenteral artesunate",
				Tier:           domain.TierUrgent,
				Indication:     "Severe malaria by clinical criteria in an exposed patient",
				RiskIfWrong:    "Well tolerated; delayed hemolysis is monitorable",
				BenefitIfRight: "Halves mortality versus quinine",
				TimeWindow:     "Within 1 hour",
				Dosing:         weightDose1(s, 2.4, "mg", "Artesunate 2.4 mg/kg (3 mg/kg if under 20 kg)", "IV/IM"),
				RequiredTests:  []domain.RequiredTest{parasitology},
			},
		},
		Confirmatory:  []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{parasitology, {Name: "Hemoglobin and glucose", Priority: domain.PriorityStat}},
	}
}

func buildHeartFailureBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "oxygen_high_flow",
				Name:           "Oxygen, sit upright",
				Tier:           domain.TierImmediate,
				Indication:     "Pulmonary congestion",
				RiskIfWrong:    "Negligible",
				BenefitIfRight: "Relieves hypoxemia and reduces work of breathing",
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "diuretic_iv",
				Name:           "IV furosemide",
				Tier:           domain.TierUrgent,
				Indication:     "Fluid overload with congestion",
				RiskIfWrong:    "Worsens a dehydrated or obstructed patient",
				BenefitIfRight: "Offloads the congested circulation",
				Dosing:         weightDose1(s, 1, "mg", "Furosemide 1 mg/kg", "IV"),
			},
		},
		Confirmatory: []domain.Intervention{
			{
				ID:                "inotrope_infusion",
				Name:              "Inotrope infusion",
				Tier:              domain.TierConfirmatory,
				Indication:        "Echocardiogram-confirmed poor contractility",
				Contraindications: []string{"Obstructive lesions dependent on preload"},
				RiskIfWrong:       "Arrhythmia and increased myocardial oxygen demand",
				BenefitIfRight:    "Supports cardiac output",
				RequiredTests:     []domain.RequiredTest{{Name: "Echocardiogram", Priority: domain.PriorityUrgent}},
			},
		},
		RequiredTests: []domain.RequiredTest{{Name: "Chest radiograph and echocardiogram", Priority: domain.PriorityUrgent}},
	}
}

func buildPneumoniaBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "oxygen_high_flow",
				Name:           "Oxygen titrated to SpO2 ≥ 92%",
				Tier:           domain.TierImmediate,
				Indication:     "Hypoxemic pneumonia",
				RiskIfWrong:    "Negligible",
				BenefitIfRight: "Corrects hypoxemia",
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "empiric_antibiotics",
				Name:           "Empiric antibiotics for pneumonia",
				Tier:           domain.TierUrgent,
				Indication:     "Clinical pneumonia",
				RiskIfWrong:    "Minimal single-course harm",
				BenefitIfRight: "Treats the likely bacterial cause",
				TimeWindow:     "Within 1 hour for severe disease",
				Dosing:         weightDose(s, 30, "mg (max 1.2 g)", "Amoxicillin-based regimen 30 mg/kg, broaden if severe", "PO/IV"),
			},
		},
		Confirmatory:  []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{{Name: "Chest radiograph", Priority: domain.PriorityUrgent}},
	}
}

func buildCroupBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "nebulized_epinephrine",
				Name:           "Nebulized epinephrine",
				Tier:           domain.TierImmediate,
				Indication:     "Stridor at rest or severe distress",
				RiskIfWrong:    "Transient tachycardia; observe for rebound",
				BenefitIfRight: "Rapidly shrinks subglottic edema",
				Dosing:         &domain.Dosing{Formula: "5 mL of 1 mg/mL epinephrine nebulized", Route: "Nebulized"},
			},
			{
				ID:             "keep_child_calm",
				Name:           "Keep the child calm on the caregiver's lap",
				Tier:           domain.TierImmediate,
				Indication:     "Agitation worsens dynamic obstruction",
				RiskIfWrong:    "None",
				BenefitIfRight: "Avoids precipitating complete obstruction",
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "corticosteroids_systemic",
				Name:           "Dexamethasone",
				Tier:           domain.TierUrgent,
				Indication:     "All croup severities",
				RiskIfWrong:    "Minimal single-dose harm",
				BenefitIfRight: "Reduces symptom duration and reattendance",
				Dosing:         weightDose1(s, 0.15, "mg (max 10 mg)", "Dexamethasone 0.15-0.6 mg/kg", "PO/IM"),
			},
		},
		Confirmatory:  []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{},
	}
}

func buildUpperAirwayBundle(s *domain.PrimarySurveyData) domain.RecommendationBundle {
	return domain.RecommendationBundle{
		Immediate: []domain.Intervention{
			{
				ID:             "secure_airway",
				Name:           "Summon senior airway help, allow position of comfort",
				Tier:           domain.TierImmediate,
				Indication:     "Any threatened upper airway",
				RiskIfWrong:    "None",
				BenefitIfRight: "Best chance of controlled airway management",
			},
			{
				ID:             "oxygen_high_flow",
				Name:           "Humidified oxygen without distressing the child",
				Tier:           domain.TierImmediate,
				Indication:     "Partial obstruction",
				RiskIfWrong:    "Negligible",
				BenefitIfRight: "Buys time for definitive management",
			},
		},
		Urgent: []domain.Intervention{
			{
				ID:             "nebulized_epinephrine",
				Name:           "Nebulized epinephrine",
				Tier:           domain.TierUrgent,
				Indication:     "Edematous causes of obstruction",
				RiskIfWrong:    "Transient tachycardia",
				BenefitIfRight: "Temporizes edema while theatre is prepared",
			},
		},
		Confirmatory:  []domain.Intervention{},
		RequiredTests: []domain.RequiredTest{},
	}
}
