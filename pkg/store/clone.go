package store

import "orgboard/pkg/orgboard"

func cloneBBSEntries(entries []orgboard.BBSEntry) []orgboard.BBSEntry {
	if len(entries) == 0 {
		return nil
	}

	return append([]orgboard.BBSEntry(nil), entries...)
}

func cloneInquiries(inquiries []orgboard.Inquiry) []orgboard.Inquiry {
	if len(inquiries) == 0 {
		return nil
	}

	return append([]orgboard.Inquiry(nil), inquiries...)
}

func cloneSettings(settings orgboard.Settings) orgboard.Settings {
	cloned := settings
	cloned.RollingImages = append([]orgboard.RollingImage(nil), settings.RollingImages...)

	return cloned
}

func cloneMemberCompanies(companies []orgboard.MemberCompany) []orgboard.MemberCompany {
	if len(companies) == 0 {
		return nil
	}

	return append([]orgboard.MemberCompany(nil), companies...)
}
